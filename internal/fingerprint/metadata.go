package fingerprint

import (
	"encoding/json"
	"encoding/xml"
)

// PluginInfo identifies the tool that produced a Metadata document.
type PluginInfo struct {
	Name          string `json:"name" xml:"name"`
	PluginVersion string `json:"pluginVersion" xml:"pluginVersion"`
}

// Metadata is the companion document written alongside merkle-root.txt.
// Field names and semantics match the structured-document wire contract
// exactly; metadataXML below renders the same fields as XML.
type Metadata struct {
	Version           string     `json:"version"`
	Variant           string     `json:"variant"`
	HashAlgorithm     string     `json:"hashAlgorithm"`
	MerkleRoot        string     `json:"merkleRoot"`
	Timestamp         string     `json:"timestamp"` // ISO-8601, UTC
	LeafCount         int        `json:"leafCount"`
	SignerFingerprint string     `json:"signerFingerprint,omitempty"`
	Plugin            PluginInfo `json:"plugin"`
}

// metadataXML is the XML rendering of Metadata with identical element names
// and values. Kept as a distinct type because encoding/xml and encoding/json
// disagree on how to tag an omitempty leaf element cleanly.
type metadataXML struct {
	XMLName           xml.Name   `xml:"metadata"`
	Version           string     `xml:"version"`
	Variant           string     `xml:"variant"`
	HashAlgorithm     string     `xml:"hashAlgorithm"`
	MerkleRoot        string     `xml:"merkleRoot"`
	Timestamp         string     `xml:"timestamp"`
	LeafCount         int        `xml:"leafCount"`
	SignerFingerprint string     `xml:"signerFingerprint,omitempty"`
	Plugin            PluginInfo `xml:"plugin"`
}

func (m Metadata) toXML() metadataXML {
	return metadataXML{
		Version:           m.Version,
		Variant:           m.Variant,
		HashAlgorithm:     m.HashAlgorithm,
		MerkleRoot:        m.MerkleRoot,
		Timestamp:         m.Timestamp,
		LeafCount:         m.LeafCount,
		SignerFingerprint: m.SignerFingerprint,
		Plugin:            m.Plugin,
	}
}

// MarshalXML renders the metadata document as XML with the same field names
// and values as its JSON form.
func (m Metadata) MarshalXML() ([]byte, error) {
	return xml.MarshalIndent(m.toXML(), "", "  ")
}

// marshalMetadataJSON renders the structured document form.
func marshalMetadataJSON(m Metadata) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
