// Package recipe is the document layer: a parsed flow with its title and
// source text, content-derived identity, and slot label tables.
package recipe

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gateflow-xyz/go-gateflow/flow"
	"github.com/gateflow-xyz/go-gateflow/parser"
)

// docNamespace seeds deterministic document ids: the same flow content
// always maps to the same UUID.
var docNamespace = uuid.MustParse("f1d5c0de-9b1a-4e63-8c7d-5a2e94c40b17")

// Recipe pairs a parsed flow with its document metadata.
type Recipe struct {
	Title  string
	Source string
	Flow   *flow.Flow
	Labels Labels
}

// Parse builds a recipe from source text. The flow comes back fully
// normalized.
func Parse(title, src string) (*Recipe, error) {
	f, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return &Recipe{Title: title, Source: src, Flow: flow.NormalizeTree(f)}, nil
}

// Load reads a recipe file. The title is the file name without its
// extension.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: read %s: %w", path, err)
	}
	base := filepath.Base(path)
	title := strings.TrimSuffix(base, filepath.Ext(base))
	return Parse(title, string(data))
}

// FID computes the content-addressed identifier of the recipe's flow.
// Any structural change to the flow changes the FID; title and source
// formatting do not participate.
func (r *Recipe) FID() string {
	data, err := json.Marshal(r.Flow)
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(data)
	return "fid:" + hex.EncodeToString(hash[:])
}

// DocID derives a stable RFC 4122 document id from the content digest.
func (r *Recipe) DocID() string {
	data, err := json.Marshal(r.Flow)
	if err != nil {
		return ""
	}
	hash := sha256.Sum256(data)
	return uuid.NewSHA1(docNamespace, hash[:]).String()
}

// Equal reports whether two recipes carry the same flow content.
func (r *Recipe) Equal(other *Recipe) bool {
	if other == nil {
		return false
	}
	return r.FID() == other.FID()
}
