// Package params holds the parameter-store vocabulary shared by every step:
// paths built from the replacements descriptor, placeholder tokens found in
// templates, tracking records and retrieved snapshot values.
package params

import (
	"regexp"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/trufnetwork/confsync/config"
)

const (
	tokenOpen  = "<<"
	tokenClose = ">>"

	// DefaultType is the type given to records discovered by the scanner.
	DefaultType = "string"
)

// TokenPattern matches a placeholder token such as <<DB_PASS>>.
var TokenPattern = regexp.MustCompile(tokenOpen + `[A-Z0-9_]+` + tokenClose)

// TemplateTokens returns every token in text, in order of appearance.
func TemplateTokens(text string) []string {
	return TokenPattern.FindAllString(text, -1)
}

// Builder derives parameter paths for a single application and environment.
type Builder struct {
	application string
	environment string
}

func NewBuilder(r config.Replacements) Builder {
	return Builder{application: r.Application, environment: r.Environment}
}

// PathFor returns /<application>/<environment>/<placeholder-lowercased>.
func (b Builder) PathFor(placeholder string) string {
	return "/" + b.application + "/" + b.environment + "/" + strings.ToLower(placeholder)
}

// BuildPaths returns one path per placeholder, in descriptor order.
func BuildPaths(r config.Replacements) []string {
	b := NewBuilder(r)
	return lo.Map(r.Placeholders, func(placeholder string, _ int) string {
		return b.PathFor(placeholder)
	})
}

// TokenFor returns the template token of a placeholder name, e.g. db_pass -> <<DB_PASS>>.
func TokenFor(placeholder string) string {
	return tokenOpen + strings.ToUpper(placeholder) + tokenClose
}

// PlaceholderFromToken is the inverse of TokenFor: <<DB_PASS>> -> db_pass.
func PlaceholderFromToken(token string) string {
	token = strings.TrimPrefix(token, tokenOpen)
	token = strings.TrimSuffix(token, tokenClose)
	return strings.ToLower(token)
}

// NameFromPath returns the last segment of a parameter path.
func NameFromPath(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// TokenForPath returns the token a parameter path substitutes, e.g.
// /svc/prod/db_pass -> <<DB_PASS>>.
func TokenForPath(path string) string {
	return TokenFor(NameFromPath(path))
}

// Record is a parameter definition as tracked in variables.yml and sent to
// the store on publish.
type Record struct {
	Name      string `yaml:"Name" validate:"required,startswith=/"`
	Overwrite bool   `yaml:"Overwrite"`
	Type      string `yaml:"Type" validate:"required"`
	Value     string `yaml:"Value"`
}

// NewTrackingRecord builds the record the scanner stores for a token found in
// a template. The token itself is kept as the value until a real one is set.
func NewTrackingRecord(b Builder, token string) Record {
	return Record{
		Name:      b.PathFor(PlaceholderFromToken(token)),
		Value:     token,
		Type:      DefaultType,
		Overwrite: true,
	}
}

// Value is a parameter as returned by the store. Only Name and Value are
// used for substitution; the rest is kept for operators reading the snapshot.
type Value struct {
	ARN              *string    `yaml:"ARN"`
	DataType         *string    `yaml:"DataType"`
	LastModifiedDate *time.Time `yaml:"LastModifiedDate"`
	Name             string     `yaml:"Name"`
	Type             *string    `yaml:"Type"`
	Value            string     `yaml:"Value"`
	Version          *int64     `yaml:"Version"`
}

// Snapshot is the ordered list of values fetched by a single retrieval.
type Snapshot []Value
