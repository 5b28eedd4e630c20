// Command fingerprint stands in for the build-tool plugin harness: it wraps
// internal/fingerprint as a CLI so the fingerprinter can be invoked as a
// build step without a real Gradle/Maven integration.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/anchorpq/integrity/internal/fingerprint"
	"github.com/anchorpq/integrity/internal/merkle"
)

func main() {
	classesRoot := flag.String("classes-root", "", "directory containing compiled .class files")
	variant := flag.String("variant", "release", "build variant name")
	version := flag.String("version", "", "application version")
	algorithm := flag.String("algorithm", string(merkle.SHA256), "digest algorithm (SHA-256, SHA-384, SHA-512, SHA3-256, SHA3-512)")
	signerFingerprint := flag.String("signer-fingerprint", "", "hex fingerprint of the signing key (optional)")
	outputDir := flag.String("output-dir", "build/anchorpq", "directory to write merkle-root.txt and metadata into")
	excludePatterns := flag.String("exclude", "", "comma-separated extra glob patterns to exclude")
	pluginVersion := flag.String("plugin-version", "dev", "version string recorded in metadata")
	flag.Parse()

	if *classesRoot == "" {
		log.Fatal("[Fingerprint] -classes-root is required")
	}
	if *version == "" {
		log.Fatal("[Fingerprint] -version is required")
	}

	params := fingerprint.Params{
		ClassesRoot:       *classesRoot,
		Variant:           *variant,
		Version:           *version,
		Algorithm:         merkle.Algorithm(*algorithm),
		SignerFingerprint: *signerFingerprint,
		OutputDir:         *outputDir,
		ExcludePatterns:   splitNonEmpty(*excludePatterns),
		PluginName:        "anchorpq-fingerprint-cli",
		PluginVersion:     *pluginVersion,
	}

	result, err := fingerprint.Run(params)
	if err != nil {
		log.Fatalf("[Fingerprint] run failed: %v", err)
	}

	log.Printf("[Fingerprint] merkleRoot=%s leafCount=%d variant=%s version=%s",
		result.MerkleRootHex, result.LeafCount, params.Variant, params.Version)
	fmt.Println(result.MerkleRootHex)
}

func splitNonEmpty(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
