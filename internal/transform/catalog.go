// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Catalog of named text transforms and their dispatch
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"sort"
	"strings"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
)

// ID identifies a transform. The values are stable and used as CLI
// arguments and websocket identifiers.
type ID string

// Miscellaneous transforms
const (
	IDRemoveDashesTrim    ID = "remove-dashes-trim"
	IDDashesToSpaces      ID = "dashes-to-spaces"
	IDUnderscoresToSpaces ID = "underscores-to-spaces"
	IDCollapseWhitespace  ID = "collapse-whitespace"
	IDSpacesToCamel       ID = "spaces-to-camel"
	IDSpacesToPascal      ID = "spaces-to-pascal"
	IDCamelToSpaces       ID = "camel-to-spaces"
	IDSpacesToUpperSnake  ID = "spaces-to-upper-snake"
	IDCamelToUpperSnake   ID = "camel-to-upper-snake"
	IDUpperSnakeToCamel   ID = "upper-snake-to-camel"
	IDUpperSnakeToPascal  ID = "upper-snake-to-pascal"
	IDMixedToUpperSnake   ID = "to-upper-snake"
	IDURLDecode           ID = "url-decode"
	IDURLEncode           ID = "url-encode"
)

// Case transforms
const (
	IDUppercase      ID = "uppercase"
	IDLowercase      ID = "lowercase"
	IDAllInitialCaps ID = "all-initial-caps"
	IDTitleCase      ID = "title-case"
	IDLowercaseFirst ID = "lowercase-first"
	IDUppercaseFirst ID = "uppercase-first"
)

// SQL transforms
const (
	IDNewlineToComma       ID = "newline-to-comma"
	IDNewlineToQuotedComma ID = "newline-to-quoted-comma"
	IDInClauseInt          ID = "in-clause-int"
	IDInClauseString       ID = "in-clause-string"
	IDSQLListInt           ID = "sql-list-int"
	IDSQLListString        ID = "sql-list-string"
)

// IDRegexReplace is the only transform that takes a pattern and a replacement.
const IDRegexReplace ID = "regex-replace"

// Group is a category of transforms, rendered as one tab in the TUI.
type Group string

const (
	GroupMisc  Group = "misc"
	GroupCase  Group = "case"
	GroupSQL   Group = "sql"
	GroupRegex Group = "regex"
)

// Title returns the display name of the group
func (g Group) Title() string {
	switch g {
	case GroupMisc:
		return "Miscellaneous"
	case GroupCase:
		return "Case"
	case GroupSQL:
		return "SQL"
	case GroupRegex:
		return "Regex"
	default:
		return string(g)
	}
}

// Args carries the extra input of the regex transform. Other transforms
// ignore it.
type Args struct {
	Pattern     string `json:"pattern,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// Func is the signature shared by all catalog entries
type Func func(input string, args Args) (string, error)

// Entry is one registered transform
type Entry struct {
	ID          ID     `json:"id"`
	Label       string `json:"label"`
	Group       Group  `json:"group"`
	Description string `json:"description"`

	// PassAbsent marks entries that return an absent input unchanged
	// instead of mapping it to "".
	PassAbsent bool `json:"pass_absent,omitempty"`

	// NeedsPattern marks entries that read Args.
	NeedsPattern bool `json:"needs_pattern,omitempty"`

	fn Func
}

// Apply runs the entry on input
func (e Entry) Apply(input string, args Args) (string, error) {
	return e.fn(input, args)
}

// Catalog is an ordered, read-only registry of transforms
type Catalog struct {
	entries []Entry
	index   map[ID]int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[ID]int)}
}

// Register adds a transform. A second registration of the same ID
// replaces the first and keeps its position.
func (c *Catalog) Register(entry Entry, fn Func) {
	entry.fn = fn
	if i, ok := c.index[entry.ID]; ok {
		c.entries[i] = entry
		return
	}
	c.index[entry.ID] = len(c.entries)
	c.entries = append(c.entries, entry)
}

// Lookup returns the entry registered under id
func (c *Catalog) Lookup(id ID) (Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries returns all entries in registration order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// ByGroup returns the entries of one group in registration order
func (c *Catalog) ByGroup(g Group) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.Group == g {
			out = append(out, e)
		}
	}
	return out
}

// Groups returns the groups in order of first appearance
func (c *Catalog) Groups() []Group {
	seen := make(map[Group]bool)
	var groups []Group
	for _, e := range c.entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}
	return groups
}

// IDs returns the registered identifiers sorted alphabetically
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		ids = append(ids, string(e.ID))
	}
	sort.Strings(ids)
	return ids
}

// ParseID validates a user supplied identifier. Matching ignores case and
// surrounding whitespace.
func (c *Catalog) ParseID(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := c.index[id]; !ok {
		return "", unknownTransform(s)
	}
	return id, nil
}

// Apply runs the transform id on input
func (c *Catalog) Apply(id ID, input string, args Args) (string, error) {
	entry, ok := c.Lookup(id)
	if !ok {
		return "", unknownTransform(string(id))
	}
	return entry.Apply(input, args)
}

// ApplyOptional runs the transform on a possibly absent input. An absent
// input yields "" for every entry except those marked PassAbsent, which
// return nil.
func (c *Catalog) ApplyOptional(id ID, input *string, args Args) (*string, error) {
	entry, ok := c.Lookup(id)
	if !ok {
		return nil, unknownTransform(string(id))
	}
	if input == nil {
		if entry.PassAbsent {
			return nil, nil
		}
		empty := ""
		return &empty, nil
	}
	out, err := entry.Apply(*input, args)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func unknownTransform(id string) *mdwerror.Error {
	return mdwerror.Newf("unknown transform %q", id).
		WithCode(mdwerror.CodeUnknownTransform).
		WithOperation("transform.lookup").
		WithDetail("id", id)
}

var defaultCatalog = newDefaultCatalog()

// Default returns the built-in catalog
func Default() *Catalog {
	return defaultCatalog
}

func newDefaultCatalog() *Catalog {
	c := NewCatalog()
	registerMiscTransforms(c)
	registerCaseTransforms(c)
	registerSQLTransforms(c)
	registerRegexTransforms(c)
	return c
}

// total adapts a function that cannot fail
func total(fn func(string) string) Func {
	return func(input string, _ Args) (string, error) {
		return fn(input), nil
	}
}

func registerMiscTransforms(c *Catalog) {
	misc := func(id ID, label, desc string, fn Func) {
		c.Register(Entry{ID: id, Label: label, Group: GroupMisc, Description: desc}, fn)
	}

	misc(IDRemoveDashesTrim, "Remove Dashes and Trim",
		"delete every '-' and trim surrounding whitespace", total(RemoveDashesAndTrim))
	misc(IDDashesToSpaces, "Replace Dashes with Spaces",
		"replace every '-' with a space", total(ReplaceDashesWithSpaces))
	misc(IDUnderscoresToSpaces, "Change Underscores to Spaces",
		"replace every '_' with a space", total(ReplaceUnderscoresWithSpaces))
	misc(IDCollapseWhitespace, "Replace Whitespace with One Space and Trim",
		"collapse whitespace runs to one space and trim", total(CollapseWhitespaceRuns))

	c.Register(Entry{
		ID:          IDSpacesToCamel,
		Label:       "Spaces to camelCase",
		Group:       GroupMisc,
		Description: "split on spaces, '_' or '-' and join as camelCase",
		PassAbsent:  true,
	}, total(func(s string) string { return ToCamelCase(s, false) }))
	c.Register(Entry{
		ID:          IDSpacesToPascal,
		Label:       "Spaces to CamelCase",
		Group:       GroupMisc,
		Description: "split on spaces, '_' or '-' and join as PascalCase",
		PassAbsent:  true,
	}, total(func(s string) string { return ToCamelCase(s, true) }))

	misc(IDCamelToSpaces, "CamelCase to Spaces",
		"insert a space before every capital letter", total(CamelCaseToSpaces))
	misc(IDSpacesToUpperSnake, "Spaces to UPPER_SNAKE_CASE",
		"trim, join words with '_' and uppercase", total(SpacesToUpperSnakeCase))
	misc(IDCamelToUpperSnake, "Camel Case to UPPER_SNAKE_CASE",
		"split camel humps, join with '_' and uppercase", total(CamelCaseToUpperSnake))
	misc(IDUpperSnakeToCamel, "UPPER_SNAKE_CASE to camelCase",
		"lowercase, split on '_' and join as camelCase",
		total(func(s string) string { return SnakeToCamel(s, false) }))
	misc(IDUpperSnakeToPascal, "UPPER_SNAKE_CASE to CamelCase",
		"lowercase, split on '_' and join as PascalCase",
		total(func(s string) string { return SnakeToCamel(s, true) }))
	misc(IDMixedToUpperSnake, "Mixed to UPPER_SNAKE_CASE",
		"'_' between a lowercase letter and a capital run, spaces to '_', uppercase",
		total(ToUpperSnake))
	misc(IDURLDecode, "Decode URL",
		"percent-decode, '+' becomes a space",
		func(s string, _ Args) (string, error) { return URLDecode(s) })
	misc(IDURLEncode, "Encode URL",
		"percent-encode as form data", total(URLEncode))
}

func registerCaseTransforms(c *Catalog) {
	cs := func(id ID, label, desc string, fn func(string) string) {
		c.Register(Entry{ID: id, Label: label, Group: GroupCase, Description: desc}, total(fn))
	}

	cs(IDUppercase, "UPPERCASE", "uppercase every character", ToUpperCase)
	cs(IDLowercase, "lowercase", "lowercase every character", ToLowerCase)
	cs(IDAllInitialCaps, "All Initial Capitals", "capitalize every word", AllInitialCaps)
	cs(IDTitleCase, "Convert to Title Case", "capitalize words except inner minor words", ToTitleCase)
	cs(IDLowercaseFirst, "lowercase First Character", "lowercase the first character", LowercaseFirst)
	cs(IDUppercaseFirst, "Uppercase First Character", "uppercase the first character", UppercaseFirst)
}

func registerSQLTransforms(c *Catalog) {
	sql := func(id ID, label, desc string, fn func(string) string) {
		c.Register(Entry{ID: id, Label: label, Group: GroupSQL, Description: desc}, total(fn))
	}

	sql(IDNewlineToComma, "Newline separated to Comma Delimited",
		"one item per line to 'a, b, c'", NewlineToComma)
	sql(IDNewlineToQuotedComma, "Newline separated to Quoted Comma Delimited",
		"one item per line to \"'a', 'b', 'c'\"", NewlineToQuotedComma)
	sql(IDInClauseInt, "In Clause for Integers",
		"one item per line to 'IN (1, 2, 3)'", ToInClauseInt)
	sql(IDInClauseString, "In Clause for Strings",
		"one item per line to \"IN ('a', 'b')\"", ToInClauseString)
	sql(IDSQLListInt, "Parenthesized List for Integers",
		"one item per line to '(1, 2, 3)'",
		func(s string) string { return ToSQLList(s, false) })
	sql(IDSQLListString, "Parenthesized List for Strings",
		"one item per line to \"('a', 'b')\"",
		func(s string) string { return ToSQLList(s, true) })
}

func registerRegexTransforms(c *Catalog) {
	c.Register(Entry{
		ID:           IDRegexReplace,
		Label:        "Find and Replace",
		Group:        GroupRegex,
		Description:  "replace every match of a regular expression",
		NeedsPattern: true,
	}, func(s string, args Args) (string, error) {
		return RegexReplace(s, args.Pattern, args.Replacement)
	})
}
