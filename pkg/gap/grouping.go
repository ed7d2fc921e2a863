package gap

import "strings"

const GeneralGroup = "General/Others"

type QuestionGroup struct {
	Name      string   `json:"group"`
	Questions []string `json:"questions"`
}

var groupRules = []struct {
	name     string
	keywords []string
}{
	{"Ethical Considerations", []string{"ethical"}},
	{"Societal Impact", []string{"impact", "societal"}},
	{"Regional Focus", []string{"africa", "asia", "latin america", "region"}},
	{"Population Groups", []string{"population", "demographic", "community"}},
}

// GroupQuestions buckets questions by keyword. A question can land in more
// than one group; questions that match nothing go to General/Others. Empty
// groups are omitted.
func GroupQuestions(questions []string) []QuestionGroup {
	buckets := make([][]string, len(groupRules))
	var general []string

	for _, q := range questions {
		lower := strings.ToLower(q)
		matched := false
		for i, rule := range groupRules {
			for _, kw := range rule.keywords {
				if strings.Contains(lower, kw) {
					buckets[i] = append(buckets[i], q)
					matched = true
					break
				}
			}
		}
		if !matched {
			general = append(general, q)
		}
	}

	groups := []QuestionGroup{}
	for i, rule := range groupRules {
		if len(buckets[i]) > 0 {
			groups = append(groups, QuestionGroup{Name: rule.name, Questions: buckets[i]})
		}
	}
	if len(general) > 0 {
		groups = append(groups, QuestionGroup{Name: GeneralGroup, Questions: general})
	}
	return groups
}
