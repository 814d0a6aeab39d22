package analysis

import (
	"fmt"
)

func sourceCodePrompt(sourceCode string) string {
	return fmt.Sprintf(`Analyze this smart contract source code and tell me:
1. The mint price per token (if fixed) or the pricing mechanism (if variable)
2. Any maximum supply limits
3. The currency used for minting (ETH, specific ERC20, etc.)
4. Any relevant mint functions and their parameters
5. Whether the mint price is defined in a different, externally-referenced contract

Source code:
%s

Format your response as JSON with these fields:
{
  "mintPrice": string | null,
  "isVariablePrice": boolean,
  "isExternalPrice": boolean,
  "maxSupply": number | null,
  "currency": string,
  "mintFunctions": string[],
  "confidence": "high" | "medium" | "low",
  "explanation": string
}`, sourceCode)
}

func externalPriceCandidatesPrompt(sourceCode string) string {
	return fmt.Sprintf(`This smart contract reads its mint price from another contract.
List the contract addresses referenced in the source code that are most likely
to hold the price, best candidate first.

Source code:
%s

Format your response as JSON:
{
  "addresses": string[]
}`, sourceCode)
}

func externalPriceExtractionPrompt(sourceCode string) string {
	return fmt.Sprintf(`Analyze this smart contract source code and extract the mint price it defines, if any.

Source code:
%s

Format your response as JSON:
{
  "mintPrice": string | null,
  "currency": string,
  "confidence": "high" | "medium" | "low"
}`, sourceCode)
}

func mintEventsPrompt(eventsJSON, previousAnalysisJSON string) string {
	return fmt.Sprintf(`Analyze these mint events and tell me the total amount raised.
Events: %s

Previous source code analysis: %s

Format response as JSON:
{
  "totalRaised": string,
  "currency": string,
  "mintCount": number | null,
  "averageMintPrice": string | null,
  "confidence": "high" | "medium" | "low",
  "explanation": string
}`, eventsJSON, previousAnalysisJSON)
}

func websiteSummaryPrompt(content string) string {
	return fmt.Sprintf(`You are analyzing the website of an NFT project. Based on the scraped
content below, produce a summary for a due-diligence dashboard.

Respond with JSON only, no prose and no markdown fences:
{
  "project_description": string,
  "roadmap": string | null,
  "services": [{ "name": string, "details": string, "priority": "high" | "medium" | "low" }],
  "confidence": "high" | "medium" | "low"
}

Website content:
%s`, content)
}
