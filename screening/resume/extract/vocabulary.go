package extract

import "regexp"

// TechWords is the technical skill vocabulary matched against resume and
// job description text. Order matters: the first ten entries double as the
// common-tech hints used by project detection.
var TechWords = []string{
	// Programming languages
	"python", "java", "c++", "c#", "javascript", "typescript", "go", "rust", "r", "scala", "kotlin",
	// Web frameworks
	"fastapi", "flask", "django", "spring", "nodejs", "express", "next.js", "nextjs", "vue.js", "nuxt",
	// Data science and ML
	"pandas", "numpy", "scipy", "scikit-learn", "sklearn", "matplotlib", "seaborn", "plotly",
	"statsmodels", "xgboost", "lightgbm", "catboost", "eda", "statistical analysis",
	// Databases
	"sql", "mysql", "postgres", "postgresql", "mongodb", "redis", "cassandra", "dynamodb", "elasticsearch",
	// Cloud and devops
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github", "circleci",
	// Big data
	"spark", "hadoop", "kafka", "airflow", "dbt", "hive", "presto",
	// Deep learning and AI
	"pytorch", "tensorflow", "keras", "torch", "onnx", "transformers", "hugging face",
	"bert", "gpt", "llm", "langchain", "faiss", "rag", "llama", "openai",
	// NLP
	"spacy", "nltk", "gensim", "textblob", "tokenization", "nlp", "ner", "sentiment",
	// Computer vision
	"opencv", "opencv-python", "yolo", "yolov8", "yolov5", "yolov3", "cnn", "deepsort",
	// Frontend
	"react", "vue", "angular", "svelte", "html", "css", "sass", "bootstrap", "tailwind", "d3.js",
	// Tools
	"git", "jupyter", "notebook", "jupyter notebook", "jira", "confluence", "notion",
	"linux", "bash", "shell", "powershell", "windows", "mac", "macos",
	// BI and analytics
	"power bi", "powerbi", "tableau", "looker", "qlik", "excel", "vba",
	// Additional ML/DL
	"regression", "classification", "random forest", "lstm", "rnn", "cnn", "gan", "mlops",
	"time series", "forecasting", "clustering", "pca", "kmeans", "ensemble", "cross validation",
	"fine-tuning", "prompt engineering", "vector databases", "embeddings", "retrieval augmented",
}

// skillPatterns holds a word-boundary pattern per vocabulary term,
// precompiled once at startup.
var skillPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(TechWords))
	for i, term := range TechWords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}()

// sectionKeywords maps each canonical section to the keywords that mark its
// header line. Detection checks sections in this order and takes the first
// match.
var sectionOrder = []string{"contact", "summary", "education", "experience", "projects", "skills", "achievements"}

var sectionKeywords = map[string][]string{
	"contact":      {"contact", "phone", "email", "linkedin", "github", "address", "location"},
	"summary":      {"summary", "objective", "profile", "about", "professional summary", "executive summary"},
	"education":    {"education", "degree", "university", "college", "b.tech", "btech", "bachelor", "master", "m.tech", "mtech", "certification", "course", "gpa", "cgpa"},
	"experience":   {"experience", "work", "employment", "professional", "job", "position", "worked as", "worked on"},
	"projects":     {"projects", "project", "portfolio", "capstone", "case study", "assignment"},
	"skills":       {"skills", "technical", "technologies", "competencies", "expertise", "proficient", "programming", "tools"},
	"achievements": {"achievements", "awards", "recognitions", "publications", "certifications", "honors", "accomplishments"},
}

// profileLabels classifies URLs by known hosts, checked in order.
var profileLabels = []struct {
	key   string
	label string
}{
	{"linkedin", "LinkedIn"},
	{"github", "GitHub"},
	{"portfolio", "Portfolio"},
	{"medium", "Medium"},
	{"kaggle", "Kaggle"},
	{"leetcode", "LeetCode"},
	{"codeforces", "Codeforces"},
	{"gitlab", "GitLab"},
	{"bitbucket", "Bitbucket"},
}
