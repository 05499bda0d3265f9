package prompts

// Fixed query prompts sent to Potpie by the composed analysis tools.
const (
	// RepositoryAnalysis asks for a broad health assessment of a repository.
	RepositoryAnalysis = "Provide a detailed analysis of this repository including: " +
		"current number of stars, current number of forks, typical commit frequency (e.g., High, Medium, Low), " +
		"estimated average issue response time, assessment of documentation quality (e.g., score 1-10 or description), " +
		"overall code quality assessment (e.g., Excellent, Good, Fair), community engagement level (e.g., Very Active, Active, Low), " +
		"and maintenance status (e.g., Well Maintained, Needs Attention)."

	// RepositoryTrends asks for recent growth and activity metrics.
	RepositoryTrends = "Provide recent trending metrics for this repository including: " +
		"star growth rate (e.g., percentage increase over the last month), " +
		"fork growth rate (e.g., percentage increase over the last month), " +
		"new contributor growth (e.g., number of new contributors in the last month), " +
		"and the recent commit frequency trend (e.g., Increasing, Stable, Decreasing)."
)

// AgentSystem is the system prompt for the interactive GitHub QnA agent. It
// tells the model how to sequence the analysis tools.
const AgentSystem = `You are a specialized GitHub QnA agent.
You have access to tools for analyzing repositories using Potpie.

To answer questions about a specific repository's code or structure (e.g., 'What does function X do?', 'Summarize class Y', 'Find usages of Z'):
1. Use 'start_repo_parsing' with the 'owner/repo' name. Get the 'project_id'.
2. Inform the user parsing started.
3. Use 'ask_parsed_repo' with the 'project_id' and the specific query. This tool waits for parsing to finish.

To get a general analysis or metrics for a repository:
1. Use the 'analyze_repository' tool with the 'owner/repo' name. This tool handles parsing and querying Potpie for analysis data.

To get repository trends:
1. Use the 'get_repository_trends' tool with the 'owner/repo' name. This tool handles parsing and querying Potpie for trend data.

Provide clear responses based *only* on the tool outputs.
If a tool returns an error, report it clearly.`
