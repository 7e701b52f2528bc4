// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dwarfkey classifies the keys of a DWARF statistics stream.
//
// Every key is parsed once into a Key, which carries the namespace it
// belongs to and its name within that namespace. Derived counters,
// such as the ref4_udata_DW_AT_* companions of ref4_DW_AT_* keys, are
// described by a Family.
package dwarfkey

import (
	"fmt"
	"strings"
)

// Names of the whole-unit counters the analyzer always emits.
const (
	CU     = "CU"     // compilation unit headers
	Abbrev = "abbrev" // abbreviation numbers
)

// A Namespace is a family of keys sharing a prefix.
type Namespace int

const (
	Other Namespace = iota
	AttrNS
	FormNS
)

// Namespaces lists the prefixed namespaces in report order.
var Namespaces = []Namespace{AttrNS, FormNS}

// Prefix returns the key prefix of ns, including the trailing
// underscore. Other has no prefix.
func (ns Namespace) Prefix() string {
	switch ns {
	case AttrNS:
		return "DW_AT_"
	case FormNS:
		return "DW_FORM_"
	}
	return ""
}

func (ns Namespace) String() string {
	switch ns {
	case AttrNS:
		return "DW_AT"
	case FormNS:
		return "DW_FORM"
	case Other:
		return "other"
	}
	return fmt.Sprintf("Namespace(%d)", int(ns))
}

// A Key is a classified statistics key.
type Key struct {
	Namespace Namespace
	// Local is the key with the namespace prefix stripped. For
	// Other keys it is the full key.
	Local string
}

// Classify parses key into its namespace and local name.
func Classify(key string) Key {
	for _, ns := range Namespaces {
		if local, ok := strings.CutPrefix(key, ns.Prefix()); ok {
			return Key{ns, local}
		}
	}
	return Key{Other, key}
}

// A Family relates base keys of the form <Name>_DW_AT_<attr> to
// companion keys of the form <Name>_<Marker>_DW_AT_<attr>.
//
// The analyzer emits one such family: for every attribute encoded with
// DW_FORM_ref4, ref4_DW_AT_* holds the bytes actually used and
// ref4_udata_DW_AT_* (or ref4_sdata_DW_AT_*) the bytes the same values
// would take as ULEB128 (or SLEB128).
type Family struct {
	Name   string
	Marker string
}

// Ref4Udata is the family the comparator uses by default.
var Ref4Udata = Family{Name: "ref4", Marker: "udata"}

// Validate reports whether f can be used to match keys.
func (f Family) Validate() error {
	if !isWord(f.Name) {
		return fmt.Errorf("bad family name %q", f.Name)
	}
	if !isWord(f.Marker) {
		return fmt.Errorf("bad family marker %q", f.Marker)
	}
	return nil
}

// Base reports whether key is a base key of f and returns the
// attribute name it refers to, for example "DW_AT_type" for
// "ref4_DW_AT_type". Companion keys are not base keys.
func (f Family) Base(key string) (attr string, ok bool) {
	rest, ok := strings.CutPrefix(key, f.Name+"_")
	if !ok {
		return "", false
	}
	name, ok := strings.CutPrefix(rest, AttrNS.Prefix())
	if !ok || !isWord(name) {
		return "", false
	}
	return rest, true
}

// Companion returns the companion key for attr.
func (f Family) Companion(attr string) string {
	return f.Name + "_" + f.Marker + "_" + attr
}

// isWord reports whether s is a non-empty run of [A-Za-z0-9_].
func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_') {
			return false
		}
	}
	return true
}
