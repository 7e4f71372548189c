package interview

import "strings"

// parseSkillList turns an LLM skill-per-line response into a clean list:
// whitespace and common list markers trimmed, blanks dropped, de-duplicated
// case-insensitively. max <= 0 means no cap.
func parseSkillList(text string, max int) []string {
	seen := make(map[string]bool)
	skills := []string{}
	for _, line := range strings.Split(text, "\n") {
		skill := strings.TrimSpace(line)
		skill = strings.TrimLeft(skill, "-*• \t")
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, skill)
		if max > 0 && len(skills) >= max {
			break
		}
	}
	return skills
}
