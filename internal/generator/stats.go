package generator

import (
	"fmt"

	"github.com/jonathan/readme-generator/internal/types"
)

// githubStatsBlock renders the trophy, stats card, streak and top-languages
// widgets for the GitHub username derived from the profile's github field.
// Returns "" when no username can be derived.
func githubStatsBlock(state types.ProfileState) string {
	u := usernameFrom(state.GitHub)
	if u == "" {
		return ""
	}
	return fmt.Sprintf(`
## 📊 GitHub Stats

[![GitHub Trophies](https://github-profile-trophy.vercel.app/?username=%s&theme=radical&no-frame=true&no-bg=true&margin-w=10&margin-h=10&row=2&column=4)](https://github.com/ryo-ma/github-profile-trophy)

![GitHub Stats](https://github-readme-stats.vercel.app/api?username=%s&show_icons=true&theme=radical&hide_border=true&bg_color=0d1117&title_color=58a6ff&text_color=8b949e&icon_color=58a6ff)

![GitHub Streak](https://gh-streak-stats.vercel.app/?user=%s&theme=radical&hide_border=true&background=0d1117&stroke=1f6feb&ring=1f6feb&fire=1f6feb&currStreakNum=8b949e&sideNums=8b949e&currStreakLabel=1f6feb&sideLabels=8b949e&dates=8b949e)

![Top Langs](https://github-readme-stats.vercel.app/api/top-langs/?username=%s&layout=compact&theme=radical&hide_border=true&bg_color=0d1117&title_color=58a6ff&text_color=8b949e&card_width=445&langs_count=8)
`, u, u, u, u)
}

// platformStatsBlock renders the stat-card widgets for the coding platforms
// that support them. Returns "" when none of those platforms are populated.
func platformStatsBlock(state types.ProfileState) string {
	var entries []string
	if u := usernameFrom(state.LeetCode); u != "" {
		entries = append(entries, fmt.Sprintf(`### LeetCode Stats

[![LeetCode Stats](https://leetcode-badge.vercel.app/api?username=%s&theme=dark)](https://leetcode.com/%s/)

[![LeetCode Heatmap](https://leetcard.jacoblin.cool/%s?theme=dark&font=roboto&ext=heatmap)](https://leetcode.com/%s/)`, u, u, u, u))
	}
	if u := usernameFrom(state.CodeForces); u != "" {
		entries = append(entries, fmt.Sprintf(`### CodeForces Stats

[![CodeForces Stats](https://codeforces-readme-stats.vercel.app/api/card?username=%s&theme=dark)](https://codeforces.com/profile/%s)`, u, u))
	}
	if u := usernameFrom(state.CodeChef); u != "" {
		entries = append(entries, fmt.Sprintf(`### CodeChef Stats

[![CodeChef](https://cp-logo.vercel.app/codechef/%s)](https://www.codechef.com/users/%s)`, u, u))
	}
	if len(entries) == 0 {
		return ""
	}
	return "## 📊 Coding Platform Stats\n\n" + joinLines(entries, "\n\n") + "\n"
}
