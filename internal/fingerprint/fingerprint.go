package fingerprint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/anchorpq/integrity/internal/merkle"
)

// DefaultExcludePatterns are the framework-generated classes excluded from
// every fingerprint regardless of configuration. Callers may extend this set
// but MUST NOT shrink it without an explicit override.
var DefaultExcludePatterns = []string{
	"R.class",
	"R$*.class",
	"BuildConfig.class",
	"*$$*.class",
	"*_Factory.class",
	"*_MembersInjector.class",
	"Hilt_*.class",
}

// Params configures a single fingerprinting run.
type Params struct {
	ClassesRoot       string
	Variant           string
	Version           string
	Algorithm         merkle.Algorithm
	SignerFingerprint string // optional, hex, may be empty
	OutputDir         string
	ExcludePatterns   []string // merged with DefaultExcludePatterns
	PluginName        string
	PluginVersion     string
}

// Result is what a successful run produces.
type Result struct {
	MerkleRootHex string
	LeafCount     int
	Metadata      Metadata
}

// Run walks params.ClassesRoot, filters and sorts the surviving files,
// builds a Merkle tree over their content hashes, and writes merkle-root.txt
// plus structured and XML metadata documents into params.OutputDir.
func Run(params Params) (*Result, error) {
	info, err := os.Stat(params.ClassesRoot)
	if err != nil || !info.IsDir() {
		return nil, ErrInputDirectoryMissing
	}

	excludes := make([]string, 0, len(DefaultExcludePatterns)+len(params.ExcludePatterns))
	excludes = append(excludes, DefaultExcludePatterns...)
	excludes = append(excludes, params.ExcludePatterns...)

	paths, err := collectPaths(params.ClassesRoot, excludes)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoInputs
	}

	sort.Strings(paths)

	leaves := make([]merkle.Hash, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, &ReadFailureError{Path: path, Err: err}
		}
		h, err := merkle.HashBytes(content, params.Algorithm)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, h)
	}

	tree, err := merkle.New(leaves, params.Algorithm)
	if err != nil {
		return nil, err
	}

	meta := Metadata{
		Version:           params.Version,
		Variant:           params.Variant,
		HashAlgorithm:     string(params.Algorithm),
		MerkleRoot:        tree.RootHex(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		LeafCount:         tree.LeafCount(),
		SignerFingerprint: params.SignerFingerprint,
		Plugin: PluginInfo{
			Name:          params.PluginName,
			PluginVersion: params.PluginVersion,
		},
	}

	if err := writeOutputs(params.OutputDir, meta); err != nil {
		return nil, err
	}

	return &Result{
		MerkleRootHex: tree.RootHex(),
		LeafCount:     tree.LeafCount(),
		Metadata:      meta,
	}, nil
}

// collectPaths recursively enumerates regular files under root whose base
// name matches *.class and survives every exclusion pattern and the
// META-INF/.dex rules. Returned paths are unsorted; callers sort separately
// to keep the filtering and ordering concerns distinct.
func collectPaths(root string, excludes []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("fingerprint: walk failed at %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if shouldExclude(path, excludes) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func shouldExclude(path string, excludes []string) bool {
	base := filepath.Base(path)

	if strings.HasSuffix(base, ".dex") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "META-INF" {
			return true
		}
	}
	if !strings.HasSuffix(base, ".class") {
		return true
	}
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func writeOutputs(outputDir string, meta Metadata) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}

	rootPath := filepath.Join(outputDir, "merkle-root.txt")
	if err := os.WriteFile(rootPath, []byte(meta.MerkleRoot+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}

	jsonBytes, err := marshalMetadataJSON(meta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "integrity-metadata.json"), jsonBytes, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}

	xmlBytes, err := meta.MarshalXML()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "integrity-metadata.xml"), xmlBytes, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWriteFailure, err)
	}

	return nil
}
