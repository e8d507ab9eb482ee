package htmlsafe

// Package htmlsafe provides:
//
// - HTML/XML escaping and unescaping of flat strings (Escape/Unescape)
// - Byte-level variants with a reduced entity set for possibly-invalid input
// - A boundary Guard enforcing input-size and encoding contracts via Issues
// - JSON string-value escaping for API responses (EscapeJSONStrings)
// - A Markup type implementing the trusted-markup protocol
//
// Design policy:
// - Keep only public APIs in the root package; put the entity tables and
//   the numeric reference parser under internal/entity.
// - Place HTTP adapters under middleware/ (echo/gin as nested modules)
//   and the CLI under cmd/htmlsafe.
// - The transforms are total: malformed entities are preserved literally,
//   never surfaced as errors. Only Guard produces Issues.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  safe := htmlsafe.Escape(userInput)
//  raw := htmlsafe.Unescape(stored)
//
//  g := htmlsafe.Guard{MaxInputBytes: htmlsafe.DefaultMaxInputBytes}
//  safe, err := g.Escape(userInput)
//
