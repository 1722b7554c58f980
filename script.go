package chandas

// Script identifies the writing system of a verse.
type Script string

const (
	// ScriptAuto lets DetectScript choose based on the text.
	ScriptAuto Script = "auto"
	// ScriptDevanagari is the principal script (U+0900–U+097F).
	ScriptDevanagari Script = "devanagari"
	// ScriptLatin is IAST transliteration, the default when detection
	// finds no Devanagari codepoint.
	ScriptLatin Script = "latin"
)

// DetectScript classifies normalized text as Devanagari or Latin (IAST).
// An explicit prefer value wins unconditionally; otherwise the first
// codepoint inside the Devanagari block decides, defaulting to Latin.
func DetectScript(text string, prefer Script) Script {
	if prefer == ScriptDevanagari || prefer == ScriptLatin {
		return prefer
	}
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return ScriptDevanagari
		}
	}
	return ScriptLatin
}
