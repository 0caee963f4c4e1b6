package suggest

import (
	"fmt"

	"github.com/betbot/betsuggest/internal/domain"
)

// InstructionVersion identifies the wording of the agent instruction. The
// text is a cross-process contract with the downstream recommendation engine:
// any change to it is an interface change and must bump this version.
const InstructionVersion = "2026-01"

// instructionTemplate is the natural-language instruction sent to the AI
// agent. The two %d verbs are the recommended game count and the per-game
// market-type count.
const instructionTemplate = `You receive as input a list of games and markets in JSON format, including (but not limited to) the following fields:

EntID – game identifier

Type – bet type

BMID – bookmaker identifier

Options → Num, Rate – betting options and odds

Goal:

Build a recommendation list of N games (default: %d),
and for each game select M unique bet types (default: %d).

Total output should be N × M betting options.

Rules:

For each game (EntID), select up to M different bet types (Type).

The same Type may appear across different games, but not more than once within the same game.

For each bet:

Calculate the Rate as the average of all Rate values for the same game, same bet type, and same Num across the different BMIDs.

Meaning: for the same EntID + Type + Num, average the Rate from all available BMIDs.

Do not invent games or markets – only use what exists in the input.

Do not recommend outcomes (no over/under decisions, no sides) – only surface available options.

Each output item must include:

EntID

Type

Num

Rate (calculated average)

CRITICAL OUTPUT REQUIREMENT:

Your response MUST ALWAYS be a valid JSON array of Game objects. The output structure is STRICTLY defined as follows:

[
  {
    "gameId": string,  // The EntID from the input data
    "date": string,    // Extract from input or use a default format
    "statusText": string,  // e.g., "Upcoming", "Live", "Finished"
    "competitor1": {
      "id": string,
      "name": string,
      "logo": string
    },
    "competitor2": {
      "id": string,
      "name": string,
      "logo": string
    },
    "venue": string,
    "bets": [
      {
        "betLineId": string,  // Unique identifier for the bet
        "betTypeName": string,  // The name/title of the bet type (from lineTypes data)
        "ai_insight": string,  // Your AI analysis or recommendation for this bet
        "odds": {
          "one": number,  // Rate for option Num=1 (averaged across BMIDs)
          "X": number,    // Rate for option Num=2 if it's a draw/X option (optional)
          "two": number   // Rate for option Num=2 or Num=3 (averaged across BMIDs)
        },
        "bookie_link": string  // Link or identifier for the bookmaker
      }
    ]
  }
]

IMPORTANT:
- The response MUST be a JSON array (starts with [ and ends with ])
- Each element in the array must be a Game object matching the structure above
- Extract game information (competitors, venue, date) from the input data.betLines
- Map bet types using the data.lineTypes to get betTypeName
- Calculate averaged odds from the Options.Rate values across different BMIDs
- The "ai_insight" field should contain your analysis or recommendation for each bet
- Return ONLY valid JSON - no additional text, explanations, or markdown formatting

The objective is to reduce noise and return a clean, averaged, ready-to-display set of betting options in the exact JSON structure specified above.`

// BuildInstruction renders the agent instruction for the given recommendation
// counts. Non-positive counts fall back to 5.
func BuildInstruction(games, markets int) string {
	if games <= 0 {
		games = 5
	}
	if markets <= 0 {
		markets = 5
	}
	return fmt.Sprintf(instructionTemplate, games, markets)
}

// SuggestionData is the joined, filtered dataset the agent works over.
type SuggestionData struct {
	BetLines  []GameLines       `json:"betLines"`
	LineTypes []domain.LineType `json:"lineTypes"`
}

// AgentPayload is the outbound AI-agent webhook body. The n8n AI Agent node
// reads the prompt from the chatInput field.
type AgentPayload struct {
	ChatInput string         `json:"chatInput"`
	Data      SuggestionData `json:"data"`
}

// BuildAgentPayload packages the filtered lines and taxonomy with the
// instruction text.
func BuildAgentPayload(instruction string, byGame []GameLines, lineTypes []domain.LineType) AgentPayload {
	return AgentPayload{
		ChatInput: instruction,
		Data: SuggestionData{
			BetLines:  byGame,
			LineTypes: lineTypes,
		},
	}
}
