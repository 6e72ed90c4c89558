package optimizer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"k8s.io/klog/v2"

	"github.com/augustin-cheron/blockzilla/blockhashregistry"
)

// EpochLayout resolves the on-disk paths for one epoch (spec §6): the
// compressed archive lives under cache-dir, the three phase outputs under
// output-dir/epoch-<N>/.
type EpochLayout struct {
	Epoch     uint64
	CacheDir  string
	OutputDir string
}

func (l EpochLayout) ArchivePath() string {
	return filepath.Join(l.CacheDir, fmt.Sprintf("epoch-%d.car.zst", l.Epoch))
}

func (l EpochLayout) epochDir() string {
	return filepath.Join(l.OutputDir, fmt.Sprintf("epoch-%d", l.Epoch))
}

func (l EpochLayout) KeyRegistryPath() string {
	return filepath.Join(l.epochDir(), "registry.bin")
}

func (l EpochLayout) BlockhashRegistryPath() string {
	return filepath.Join(l.epochDir(), "blockhash_registry.bin")
}

func (l EpochLayout) CompactPath() string {
	return filepath.Join(l.epochDir(), "compact.bin")
}

// Pipeline holds the options shared by every subcommand that builds an
// epoch's compact output.
type Pipeline struct {
	CacheDir           string
	OutputDir          string
	Resume             bool
	ProgressEvery      int
	BincodeEpochCutoff uint64
}

func (p Pipeline) layout(epoch uint64) EpochLayout {
	return EpochLayout{Epoch: epoch, CacheDir: p.CacheDir, OutputDir: p.OutputDir}
}

// BuildBlockhashRegistry runs phase 1 for one epoch, carrying over the
// bounded tail of the previous epoch's blockhash registry if one exists on
// disk (nil otherwise — the first epoch of a chain has no tail).
func (p Pipeline) BuildBlockhashRegistry(epoch uint64) error {
	l := p.layout(epoch)
	if err := os.MkdirAll(filepath.Dir(l.BlockhashRegistryPath()), 0o755); err != nil {
		return fmt.Errorf("optimizer: creating output dir: %w", err)
	}
	prevTail, err := p.previousEpochTail(epoch)
	if err != nil {
		return err
	}
	return BuildBlockhashRegistry(l.ArchivePath(), l.BlockhashRegistryPath(), prevTail, p.Resume, p.ProgressEvery)
}

func (p Pipeline) previousEpochTail(epoch uint64) ([]blockhashregistry.Hash, error) {
	if epoch == 0 {
		return nil, nil
	}
	prevPath := p.layout(epoch - 1).BlockhashRegistryPath()
	raw, err := os.ReadFile(prevPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("optimizer: reading previous epoch's blockhash registry: %w", err)
	}
	hashes, err := blockhashregistry.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("optimizer: loading previous epoch's blockhash registry: %w", err)
	}
	if len(hashes) > blockhashregistry.PrevTailLen {
		hashes = hashes[len(hashes)-blockhashregistry.PrevTailLen:]
	}
	return hashes, nil
}

// BuildKeyRegistry runs phase 2 for one epoch.
func (p Pipeline) BuildKeyRegistry(epoch uint64) error {
	l := p.layout(epoch)
	if err := os.MkdirAll(filepath.Dir(l.KeyRegistryPath()), 0o755); err != nil {
		return fmt.Errorf("optimizer: creating output dir: %w", err)
	}
	return BuildKeyRegistry(l.ArchivePath(), l.KeyRegistryPath(), p.BincodeEpochCutoff, p.Resume, p.ProgressEvery)
}

// Compact runs phase 3 for one epoch, recovering the same previous-epoch
// blockhash tail phase 1 embedded so recent-blockhash lookups that fall in
// the tail still resolve to a registry id instead of falling through to the
// durable-nonce encoding.
func (p Pipeline) Compact(epoch uint64) error {
	l := p.layout(epoch)
	if err := os.MkdirAll(filepath.Dir(l.CompactPath()), 0o755); err != nil {
		return fmt.Errorf("optimizer: creating output dir: %w", err)
	}
	prevTail, err := p.previousEpochTail(epoch)
	if err != nil {
		return err
	}
	return Compact(l.ArchivePath(), l.KeyRegistryPath(), l.BlockhashRegistryPath(), l.CompactPath(), prevTail, p.BincodeEpochCutoff, p.Resume, p.ProgressEvery)
}

// Build runs all three phases for one epoch in order.
func (p Pipeline) Build(epoch uint64) error {
	if err := p.BuildBlockhashRegistry(epoch); err != nil {
		return fmt.Errorf("optimizer: phase 1 (blockhash registry) for epoch %d: %w", epoch, err)
	}
	if err := p.BuildKeyRegistry(epoch); err != nil {
		return fmt.Errorf("optimizer: phase 2 (key registry) for epoch %d: %w", epoch, err)
	}
	if err := p.Compact(epoch); err != nil {
		return fmt.Errorf("optimizer: phase 3 (compact) for epoch %d: %w", epoch, err)
	}
	return nil
}

var epochArchiveRe = regexp.MustCompile(`^epoch-(\d+)\.car\.zst$`)

// BuildAll discovers every epoch-<N>.car.zst under CacheDir and runs Build
// on each, in ascending epoch order (so each epoch's blockhash-registry
// tail can chain off the previous one).
func (p Pipeline) BuildAll() error {
	entries, err := os.ReadDir(p.CacheDir)
	if err != nil {
		return fmt.Errorf("optimizer: listing cache dir %s: %w", p.CacheDir, err)
	}
	var epochs []uint64
	for _, e := range entries {
		m := epochArchiveRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		var n uint64
		if _, err := fmt.Sscanf(m[1], "%d", &n); err != nil {
			continue
		}
		epochs = append(epochs, n)
	}
	sort.Slice(epochs, func(i, j int) bool { return epochs[i] < epochs[j] })

	klog.Infof("build-all: found %d epoch archives in %s", len(epochs), p.CacheDir)
	for _, epoch := range epochs {
		klog.Infof("build-all: starting epoch %d", epoch)
		if err := p.Build(epoch); err != nil {
			return err
		}
	}
	return nil
}
