package binding

// reservedWords are identifiers that collide with a keyword of the
// target FFI syntax; any produced identifier equal to one of these is
// escaped with a leading underscore.
var reservedWords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true,
	"crate": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true,
	"in": true, "let": true, "loop": true, "match": true, "mod": true,
	"move": true, "mut": true, "pub": true, "ref": true, "return": true,
	"self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true,
	"unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true,
	"become": true, "box": true, "do": true, "final": true,
	"macro": true, "override": true, "priv": true, "typeof": true,
	"unsized": true, "virtual": true, "yield": true, "try": true,
	"union": true,
}

// EscapeKeyword prefixes name with an underscore if it collides with a
// reserved word of the target syntax.
func EscapeKeyword(name string) string {
	if reservedWords[name] {
		return "_" + name
	}
	return name
}

// builtinTypeNames are the FFI-primitive type names a Typedef must
// never shadow with its own declaration.
var builtinTypeNames = map[string]bool{
	"bool": true,
	"i8": true, "u8": true,
	"i16": true, "u16": true,
	"i32": true, "u32": true,
	"i64": true, "u64": true,
	"i128": true, "u128": true,
	"f32": true, "f64": true,
}
