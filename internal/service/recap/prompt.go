package recap

import (
	"fmt"
	"strings"
)

// Format selects the recap template.
type Format string

const (
	FormatClassic  Format = "Classic"
	FormatDetailed Format = "Detailed"
)

// ValidFormat reports whether f is a known recap format.
func ValidFormat(f Format) bool {
	return f == FormatClassic || f == FormatDetailed
}

// BuildPrompt renders the instruction sent to the LLM. persona is the
// free-text character description; level is the trash-talk intensity from
// 1 (friendly banter) to 10 (ruthless).
func BuildPrompt(format Format, persona string, level int, summary string) string {
	if format == FormatDetailed {
		return fmt.Sprintf(detailedTemplate, persona, level, persona, summary)
	}
	return fmt.Sprintf(classicTemplate, persona, persona, level, persona, summary)
}

var classicTemplate = strings.TrimSpace(`
You will be provided a summary below containing the most recent weekly stats for a fantasy football league.

Create a hilarious and engaging weekly recap in the style of %s. This should be substantially longer, funnier, and more detailed than a typical summary.

YOUR MISSION:
- Write 800-1200 words of pure entertainment
- Channel %s's personality with humor and wit
- Include trash talk at level %d/10 (be appropriately ruthless)
- Make this the most anticipated part of their league experience

CONTENT REQUIREMENTS:
- Start with a memorable character introduction
- Cover ALL the major storylines and matchups from the week
- Roast poor performances and celebrate great ones
- Make jokes about team names, player choices, and league drama
- Include specific stats but weave them into funny narratives
- Add sports analogies, pop culture references, and witty observations
- Create memorable one-liners and quotable moments
- End with trash talk and predictions for next week

STYLE GUIDELINES:
- Be SNARKY and HILARIOUS while staying true to %s
- Don't just report stats - tell entertaining stories about what happened
- Create dramatic tension around close games and mock blowouts
- Include thematic emojis that enhance the humor
- Make every manager want to keep reading until the end

REMEMBER: You're not just summarizing - you're ENTERTAINING. Make this recap so good that managers screenshot it and share it with friends.

Here is the provided weekly fantasy summary: %s
`)

var detailedTemplate = strings.TrimSpace(`
You will be provided a summary below containing the most recent weekly stats for a fantasy football league.

Create an EPIC, comprehensive, and hilariously detailed weekly recap in the style of %s. Think ESPN highlight reel meets roast comedy special. Make it LONG, DETAILED, FUNNY, and SNARKY.

STRUCTURE YOUR RECAP AS FOLLOWS:

1. DRAMATIC WEEK OPENING (2-3 paragraphs):
   - Start with a theatrical introduction about the week's chaos
   - Set the scene like you're narrating a sports documentary
   - Mention the biggest storylines, upsets, and drama

2. LEAGUE POWER RANKINGS ROAST (1-2 paragraphs):
   - Discuss current standings with BRUTAL honesty
   - Mock the pretenders, praise the contenders
   - Make predictions and throw shade at playoff hopes

3. MATCHUP-BY-MATCHUP DESTRUCTION (the MAIN EVENT - be thorough):
   For EVERY SINGLE matchup, provide:
   - A creative nickname/storyline for each game
   - Detailed play-by-play style commentary on what happened
   - Roast poor performances mercilessly (within trash talk level %d)
   - Include specific point totals and what they mean
   - Don't just report scores - tell the STORY of each battle

4. HEROES AND VILLAINS OF THE WEEK (2-3 paragraphs):
   - Crown the week's MVP with fanfare
   - Publicly shame the biggest busts and disappointments

5. THE WEEKLY AWARDS CEREMONY:
   - "Manager of the Week" (with sarcastic reasoning)
   - "Worst Decision Award"
   - "Luckiest SOB Award"
   - Be creative with categories and RUTHLESS with commentary

6. TRASH TALK AND PREDICTIONS:
   - Make bold predictions for next week
   - Call out managers by name for their successes and failures
   - End with a memorable one-liner or challenge

WRITING STYLE REQUIREMENTS:
- Write 1500-2500 words minimum - make it SUBSTANTIAL
- Channel %s personality throughout
- Use humor, sarcasm, and wit liberally
- Be detailed enough that someone who didn't watch can visualize everything

REMEMBER: This isn't just a summary - it's ENTERTAINMENT. Make it legendary.

Here is the provided weekly fantasy summary: %s
`)
