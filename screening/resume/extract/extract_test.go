package extract

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com | +1 555-123-4567
https://linkedin.com/in/johnsmith
https://github.com/johnsmith

Summary:
Data engineer with five years building batch and streaming pipelines.

Experience:
Acme Corp, Senior Data Engineer
Built ingestion services in Python and Go backed by Kafka and Postgres.

Projects:
Project: Realtime Dashboard (python, react)
• Churn Model built with sklearn and pandas

Skills: python, go, sql, docker, kafka

Achievements:
• Reduced pipeline latency by 40 percent across the board
- Won the 2022 internal hackathon with a fraud detection demo
`

func TestNormalize(t *testing.T) {
	assert.Equal(t, "c++ c# next.js dev", Normalize("  C++, C# & Next.js dev!  "))
	assert.Equal(t, "", Normalize("***"))
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"simple", "John Smith\njohn@example.com", "John Smith"},
		{"lowercased input", "john smith\njohn@example.com", "John Smith"},
		{"split across lines", "V T\nIPIN OMER\nvt@example.com", "V T Ipin Omer"},
		{"skips contact lines", "john@example.com\nhttps://example.com\nJane Doe", "Jane Doe"},
		{"skips section words", "Professional Summary:\nJane Doe", "Jane Doe"},
		{"empty", "", ""},
		{"only urls", "https://example.com\nmail@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.text))
		})
	}
}

func TestEmailPhone(t *testing.T) {
	assert.Equal(t, "john.smith@example.com", Email(sampleResume))
	assert.Equal(t, "", Email("no contact here"))

	assert.NotEmpty(t, Phone("call +1 555-123-4567 today"))
	assert.Equal(t, "", Phone("no digits"))
}

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleResume)

	for _, name := range []string{"contact", "summary", "education", "experience", "projects", "skills", "achievements", "other"} {
		_, ok := sections[name]
		require.True(t, ok, "missing section %q", name)
	}

	assert.Contains(t, sections["summary"], "Data engineer")
	assert.Contains(t, sections["experience"], "Acme Corp")
	assert.Contains(t, sections["projects"], "Realtime Dashboard")
	assert.Contains(t, sections["skills"], "docker")
	assert.Contains(t, sections["achievements"], "hackathon")
	assert.Equal(t, "", sections["education"])
	assert.Equal(t, "", sections["other"])
}

func TestSplitSectionsPartitionsLines(t *testing.T) {
	text := `John Smith
john@example.com
Summary:
Seasoned backend developer.
Education:
BSc Computer Science
Experience:
Built data pipelines at Acme.
Projects:
• Inventory tracker (python)
Skills:
python, sql
Achievements:
- Won the 2023 internal hackathon`

	sections := SplitSections(text)

	// With every header unique, the sections partition the input: joining
	// their contents yields every non-empty line exactly once.
	var got []string
	for _, content := range sections {
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) != "" {
				got = append(got, line)
			}
		}
	}
	var want []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			want = append(want, line)
		}
	}
	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestSplitSectionsRepeatedHeaderOverwrites(t *testing.T) {
	// Each profile URL re-opens the contact section, so only the block
	// started by the last contact header survives.
	sections := SplitSections(sampleResume)
	assert.Equal(t, "https://github.com/johnsmith", sections["contact"])
	assert.NotContains(t, sections["contact"], "John Smith")
}

func TestSplitSectionsNoHeaders(t *testing.T) {
	sections := SplitSections("just one line\nand another line")
	assert.Equal(t, "just one line\nand another line", sections["contact"])
	assert.Equal(t, "", sections["skills"])
}

func TestIsSectionHeader(t *testing.T) {
	assert.True(t, isSectionHeader("Skills:", "skills"))
	assert.True(t, isSectionHeader("TECHNICAL SKILLS", "skills"))
	assert.True(t, isSectionHeader("Work Experience:", "experience"))
	// Keyword present but no colon and no trailing "s".
	assert.False(t, isSectionHeader("worked at a small skill shop!", "skills"))
	assert.False(t, isSectionHeader("random line", "skills"))
}

func TestSkillsWordBoundaries(t *testing.T) {
	skills := Skills("Senior Javascript engineer")
	assert.Contains(t, skills, "javascript")
	assert.NotContains(t, skills, "java")

	skills = Skills("Java and JavaScript, plus Go")
	assert.Contains(t, skills, "java")
	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "go")
}

func TestSkillsSortedUnique(t *testing.T) {
	skills := Skills("python python PYTHON docker aws")
	assert.Equal(t, []string{"aws", "docker", "python"}, skills)
}

func TestProjects(t *testing.T) {
	projects := Projects("Project: Churn Model built with sklearn\n2019 started work\nshort\n")
	require.Len(t, projects, 1)
	assert.Contains(t, projects[0].Technologies, "sklearn")
	assert.Contains(t, projects[0].Technologies, "r")
}

func TestProjectsSubstringTechDetection(t *testing.T) {
	// Substring matching picks up "java" inside "javascript" and "r" inside
	// everything, and name cleanup strips the matched text from the line.
	projects := Projects("• Portal rebuilt in JavaScript end to end")
	require.Len(t, projects, 1)
	assert.Equal(t, []string{"java", "javascript", "r"}, projects[0].Technologies)
	assert.Equal(t, "potal ebuilt in scipt end to end", projects[0].Name)
}

func TestProjectsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 15; i++ {
		b.WriteString("Project: something number ")
		b.WriteString(strings.Repeat("x", i+1))
		b.WriteString("\n")
	}
	assert.Len(t, Projects(b.String()), 10)
}

func TestAchievements(t *testing.T) {
	got := Achievements("• Reduced pipeline latency by 40 percent\n- too short\n1. Shipped the v2 rewrite ahead of schedule\nplain line\n\n")
	require.Len(t, got, 2)
	assert.Equal(t, "Reduced pipeline latency by 40 percent", got[0])
	assert.Equal(t, "Shipped the v2 rewrite ahead of schedule", got[1])
}

func TestAchievementsTruncation(t *testing.T) {
	long := "• " + strings.Repeat("a", 300)
	got := Achievements(long)
	require.Len(t, got, 1)
	assert.Len(t, got[0], 200)
}

func TestProfiles(t *testing.T) {
	got := Profiles("see https://github.com/johnsmith and https://example.com/me")
	require.Len(t, got, 2)
	assert.Equal(t, ProfileLink{Label: "GitHub", URL: "https://github.com/johnsmith"}, got[0])
	assert.Equal(t, ProfileLink{Label: "Website", URL: "https://example.com/me"}, got[1])
}

func TestLabelURL(t *testing.T) {
	assert.Equal(t, "LinkedIn", LabelURL("https://LINKEDIN.com/in/x"))
	assert.Equal(t, "Kaggle", LabelURL("https://kaggle.com/x"))
	assert.Equal(t, "Website", LabelURL("https://blog.example.org"))
}
