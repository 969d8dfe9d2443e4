package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	thinkBlockRe  = regexp.MustCompile(`(?s)<think>.*?</think>`)
)

// ExtractJSON pulls a JSON document out of raw model output and unmarshals
// it into v. Models wrap JSON in markdown fences, prose, or reasoning tags,
// so candidates are tried in order: fenced code block, the brace and
// bracket spans, the whole trimmed text. If none parse, one cleanup pass
// strips the known wrapper tokens and the chain runs once more. Returns
// false when no candidate parses; extraction failure is a value, not an
// error.
func ExtractJSON(raw string, v any) bool {
	if tryCandidates(raw, v) {
		return true
	}
	cleaned := cleanup(raw)
	if cleaned == raw {
		return false
	}
	return tryCandidates(cleaned, v)
}

func tryCandidates(text string, v any) bool {
	for _, candidate := range candidates(text) {
		if json.Unmarshal([]byte(candidate), v) == nil {
			return true
		}
	}
	return false
}

func candidates(text string) []string {
	var out []string
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}
	out = append(out, spans(text)...)
	if trimmed := strings.TrimSpace(text); trimmed != "" {
		out = append(out, trimmed)
	}
	return out
}

// spans returns the first-{ to last-} and first-[ to last-] substrings as
// independent candidates. An array answer contains braces inside its
// elements, so the object span alone would mangle it; when both spans
// exist the one whose opener appears first in the text is tried first.
func spans(text string) []string {
	objStart := strings.Index(text, "{")
	objEnd := strings.LastIndex(text, "}")
	arrStart := strings.Index(text, "[")
	arrEnd := strings.LastIndex(text, "]")

	hasObj := objStart >= 0 && objEnd > objStart
	hasArr := arrStart >= 0 && arrEnd > arrStart

	var out []string
	if hasObj && hasArr && arrStart < objStart {
		return []string{text[arrStart : arrEnd+1], text[objStart : objEnd+1]}
	}
	if hasObj {
		out = append(out, text[objStart:objEnd+1])
	}
	if hasArr {
		out = append(out, text[arrStart:arrEnd+1])
	}
	return out
}

// cleanup strips wrapper tokens models are known to emit: reasoning tags,
// markdown fences, and a bare leading "json" language label.
func cleanup(raw string) string {
	s := thinkBlockRe.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(s)
}
