package treemap

import "strings"

// PathString joins the names from the root down to id, each prefixed by the
// node's own separator.
func (t *Tree) PathString(id NodeID) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	if n.parent == NoNode {
		return n.name
	}
	return t.PathString(n.parent) + n.entity.Separator() + n.name
}

// DisplayText returns PathString(id) followed by the entity suffix, shortened
// to fit maxLen runes where possible. Each round trims the longest path
// components by three runes and marks them with "..". Components of three
// runes or fewer are never trimmed, so the result may still exceed maxLen.
func (t *Tree) DisplayText(id NodeID, maxLen int) string {
	n := t.Node(id)
	if n == nil {
		return ""
	}
	path := t.PathString(id)
	suffix := n.entity.Suffix(n)
	sep := n.entity.Separator()

	for runeLen(path)+runeLen(suffix) > maxLen {
		parts := strings.Split(path, sep)
		longest := 0
		for _, p := range parts {
			longest = max(longest, runeLen(p))
		}
		if longest <= 3 {
			break
		}
		for i, p := range parts {
			if runeLen(p) == longest {
				r := []rune(p)
				parts[i] = string(r[:len(r)-3]) + ".."
			}
		}
		path = strings.Join(parts, sep)
	}
	return path + suffix
}

func runeLen(s string) int { return len([]rune(s)) }
