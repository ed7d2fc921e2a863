package gap

import (
	"fmt"
	"strings"

	"research-gap-be/pkg/llm"
)

func systemAndUser(system, user string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}

func temporalPrompt(topic string, years []string) string {
	first, last := years[0], years[len(years)-1]
	return fmt.Sprintf(
		"You are a bibliometrics research assistant. Estimate the number of academic publications about %q for each year from %s to %s. "+
			"Respond with one line per year in the exact format \"Year: Count\" (for example \"%s: 42\"). "+
			"Use whole numbers only and do not add any other text.",
		topic, first, last, last)
}

func labeledPrompt(topic, noun string, labels []string) string {
	return fmt.Sprintf(
		"You are a bibliometrics research assistant. Estimate the relative volume of academic research about %q for each of these %s: %s. "+
			"Respond with one line per %s in the exact format \"Label: Count\", using exactly the names given above and whole numbers only. "+
			"Do not add any other text.",
		topic, noun+"s", strings.Join(labels, ", "), noun)
}

func thematicPrompt(topic string) string {
	return fmt.Sprintf(
		"You are a research strategist. Identify the 6 to 8 main subtopics of research about %q and estimate how well each one is covered by existing research, "+
			"as a percentage from 0 to 100. Respond with one line per subtopic in the exact format \"Subtopic: Coverage%%\". Do not add any other text.",
		topic)
}

func summaryPrompt(topic string) string {
	return fmt.Sprintf(
		"You are a research assistant. Provide a concise summary of the current research landscape for the topic: %s. "+
			"Focus on key areas, recent trends, and any obvious gaps or under-researched aspects based on general knowledge. Be factual and objective.",
		topic)
}

func synthesisPrompt(topic string, priorInsights []string) string {
	if len(priorInsights) == 0 {
		return fmt.Sprintf(
			"You are an expert research strategist. For the topic %q, provide fresh, concise insights into potential research gaps and generate 5-7 highly impactful, "+
				"novel research questions that address these gaps. Focus on interdisciplinary or overlooked aspects. "+
				"Format your response clearly: first list insights with bullet points, then a line titled \"Research Questions\", then list the questions with bullet points.",
			topic)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert research strategist. For the topic %q the following research gaps were detected:\n", topic)
	for _, insight := range priorInsights {
		fmt.Fprintf(&b, "- %s\n", insight)
	}
	b.WriteString("Refine these into concise insights and generate 5-7 highly impactful, novel research questions that address them. " +
		"Format your response clearly: first list insights with bullet points, then a line titled \"Research Questions\", then list the questions with bullet points.")
	return b.String()
}
