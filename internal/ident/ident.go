// Package ident validates package and class identifiers for the supported languages.
//
// Overview:
//   - Responsibility: Decide whether a package or class name can be scaffolded
//   - Key Types: Language
//   - Concurrency Model: Pure functions over immutable tables
//   - Error Semantics: Validation errors carry core/errors.CodeInvalidArgument
//   - Performance Notes: O(n) in the identifier length
//
// Usage:
//
//	lang, err := ident.ParseLanguage("java")
//	err = ident.ValidatePackage(lang, "anderson.app")
//	err = ident.ValidateClass(lang, "Gui")
package ident

import (
	"strings"
	"unicode"

	"go.eggybyte.com/scaffold/core/errors"
)

// Language is a target language for generated scaffolds.
type Language string

const (
	Java   Language = "java"
	Kotlin Language = "kotlin"
)

// Languages lists the supported languages in display order.
var Languages = []Language{Java, Kotlin}

// Extension returns the source file extension including the dot.
func (l Language) Extension() string {
	switch l {
	case Kotlin:
		return ".kt"
	default:
		return ".java"
	}
}

// SourceRoot returns the conventional main source root, e.g. src/main/java.
func (l Language) SourceRoot() string {
	return "src/main/" + string(l)
}

// TestRoot returns the conventional test source root, e.g. src/test/java.
func (l Language) TestRoot() string {
	return "src/test/" + string(l)
}

// ParseLanguage resolves a language name; the empty string means Java.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", Java:
		return Java, nil
	case Kotlin, "kt":
		return Kotlin, nil
	default:
		return "", errors.Newf(errors.CodeInvalidArgument, "unsupported language %q (supported: java, kotlin)", s)
	}
}

// Java reserved words and literals.
var javaReserved = set(
	"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char",
	"class", "const", "continue", "default", "do", "double", "else", "enum",
	"extends", "final", "finally", "float", "for", "goto", "if", "implements",
	"import", "instanceof", "int", "interface", "long", "native", "new",
	"package", "private", "protected", "public", "return", "short", "static",
	"strictfp", "super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while", "true", "false", "null",
	"_",
)

// Contextual keywords Java forbids as type names but allows elsewhere.
var javaRestrictedTypeNames = set("permits", "record", "sealed", "var", "yield")

// Kotlin hard keywords.
var kotlinReserved = set(
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
	"if", "in", "interface", "is", "null", "object", "package", "return",
	"super", "this", "throw", "true", "try", "typealias", "typeof", "val",
	"var", "when", "while",
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsIdentifier reports whether s is a valid identifier in lang.
// Java accepts '$' as an identifier character; Kotlin does not.
func IsIdentifier(lang Language, s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case r == '$' && lang == Java:
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return !IsReserved(lang, s)
}

// IsReserved reports whether s is a reserved word in lang.
func IsReserved(lang Language, s string) bool {
	reserved := javaReserved
	if lang == Kotlin {
		reserved = kotlinReserved
	}
	_, ok := reserved[s]
	return ok
}

// ValidatePackage checks a dot-separated package name.
func ValidatePackage(lang Language, name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidArgument, "package name must not be empty")
	}
	for _, segment := range strings.Split(name, ".") {
		if !IsIdentifier(lang, segment) {
			return errors.Newf(errors.CodeInvalidArgument, "invalid package name %q: segment %q is not a valid %s identifier", name, segment, lang)
		}
	}
	return nil
}

// ValidateClass checks a bare class name.
func ValidateClass(lang Language, name string) error {
	if name == "" {
		return errors.New(errors.CodeInvalidArgument, "class name must not be empty")
	}
	if !IsIdentifier(lang, name) {
		return errors.Newf(errors.CodeInvalidArgument, "invalid class name %q: not a valid %s identifier", name, lang)
	}
	if _, restricted := javaRestrictedTypeNames[name]; restricted && lang == Java {
		return errors.Newf(errors.CodeInvalidArgument, "invalid class name %q: restricted type identifier in java", name)
	}
	return nil
}
