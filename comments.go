package obsidian2tex

import "regexp"

// blockComment matches a closed %%...%% span, delimiters included.
var blockComment = regexp.MustCompile(`(?s)%%(.*?)%%`)

// stripComments removes Obsidian block comments from the buffer. Only
// complete, closed spans are stripped; an unterminated %% has no closing
// delimiter and is left literal.
func stripComments(buf string) string {
	return blockComment.ReplaceAllString(buf, "")
}
