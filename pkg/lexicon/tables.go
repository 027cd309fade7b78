package lexicon

// Built-in vocabulary. These tables seed every Lexicon and are never mutated;
// New copies them before merging external skills data.

//nolint:gochecknoglobals // Static vocabulary
var builtinStopWords = []string{
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
	"has", "he", "in", "is", "it", "its", "of", "on", "that", "the",
	"to", "was", "will", "with", "have", "had", "been", "this", "which",
	"who", "whom", "whose", "their", "they", "them", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not",
	"only", "own", "same", "so", "than", "too", "very", "can", "just",
	"should", "now", "about", "across", "after", "against", "along",
	"among", "around", "because", "before", "behind", "below", "beneath",
	"beside", "between", "beyond", "but", "concerning", "despite",
	"down", "during", "except", "following", "including", "into", "like",
	"near", "off", "onto", "out", "over", "past", "plus", "regarding",
	"since", "through", "throughout", "towards", "under", "until", "up",
	"upon", "within", "without",
}

//nolint:gochecknoglobals // Static vocabulary
var builtinActionVerbs = []string{
	"achieved", "implemented", "developed", "managed", "led", "created",
	"designed", "built", "improved", "increased", "reduced", "optimized",
	"delivered", "launched", "established", "coordinated", "executed",
	"analyzed", "resolved", "streamlined", "automated", "collaborated",
	"spearheaded", "orchestrated", "pioneered", "transformed", "drove",
	"architected", "facilitated", "modernized", "overhauled", "consolidated",
	"mentored", "authored", "presented", "negotiated", "realigned",
}

//nolint:gochecknoglobals // Static vocabulary
var builtinSkillCategories = map[string][]string{
	"frontend": {
		"react", "angular", "vue", "nextjs", "typescript", "javascript", "html", "css", "sass",
		"tailwind", "redux", "webpack", "jquery", "bootstrap", "material-ui", "three.js",
	},
	"backend": {
		"python", "java", "node.js", "go", "golang", "ruby", "php", "rust", "c#", "c++", ".net",
		"flask", "django", "spring", "express", "laravel", "fastapi", "rails", "scala", "kotlin",
	},
	"database": {
		"sql", "nosql", "mongodb", "postgresql", "mysql", "redis", "elasticsearch", "cassandra",
		"dynamodb", "oracle", "sqlite", "firestore", "mariadb", "neo4j",
	},
	"cloud_devops": {
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
		"terraform", "ansible", "circleci", "travis", "prometheus", "grafana", "datadog", "elk",
		"pl/sql", "bash", "shell", "linux", "unix",
	},
	"data_science": {
		"pandas", "numpy", "scipy", "scikit-learn", "tensorflow", "pytorch", "keras", "nlp",
		"computer vision", "data mining", "tableau", "powerbi", "regression", "classification",
		"clustering", "big data", "hadoop", "spark", "kafka", "airflow", "etl", "machine learning",
		"deep learning", "ai", "ml", "genai", "llm", "rag",
	},
	"mobile": {
		"react native", "flutter", "swift", "kotlin", "objective-c", "ios", "android", "xamarin",
		"ionic", "dart",
	},
	"mechanical": {
		"autocad", "solidworks", "catia", "ansys", "creo", "pro/engineer", "fusion 360", "inventor",
		"cae", "cam", "cnc", "gd&t", "hvac", "thermodynamics", "fluid mechanics", "heat transfer",
		"fea", "cfd", "robotics", "mechatronics", "matlab", "simulink", "six sigma",
		"lean manufacturing", "abaqus", "hypermesh",
	},
	"electrical": {
		"matlab", "simulink", "pspice", "multisim", "etap", "labview", "plc", "scada", "verilog",
		"vhdl", "fpga", "microcontrollers", "arduino", "raspberry pi", "pcb design", "altium",
		"eagle", "kicad", "embedded systems", "iot", "signal processing", "control systems",
	},
	"civil": {
		"autocad", "civil 3d", "revit", "staad.pro", "etabs", "sap2000", "primavera", "ms project",
		"bim", "gis", "arcgis", "structural analysis", "surveying", "estimation", "concrete",
		"steel structures", "geotechnical",
	},
	"business": {
		"salesforce", "hubspot", "crm", "seo", "sem", "google analytics", "excel", "powerpoint",
		"tableau", "financial analysis", "accounting", "marketing", "sales", "business development",
		"strategy", "operations", "supply chain", "logistics", "hr", "recruitment",
	},
	"professional": {
		"agile", "scrum", "kanban", "jira", "confluence", "project management", "leadership",
		"communication", "problem solving", "teamwork", "collaboration", "stakeholder management",
		"sdlc", "waterfall", "critical thinking", "time management",
	},
}

//nolint:gochecknoglobals // Static vocabulary
var builtinSynonyms = map[string]string{
	"ml":        "machine learning",
	"ai":        "artificial intelligence",
	"sklearn":   "scikit-learn",
	"js":        "javascript",
	"ts":        "typescript",
	"reactjs":   "react",
	"react.js":  "react",
	"vuejs":     "vue",
	"vue.js":    "vue",
	"nodejs":    "node.js",
	"node":      "node.js",
	"nlp":       "natural language processing",
	"cv":        "computer vision",
	"aws":       "amazon web services",
	"gcp":       "google cloud platform",
	"azure":     "microsoft azure",
	"rest":      "restful",
	"git":       "github",
	"eda":       "exploratory data analysis",
	"api":       "application programming interface",
	"dl":        "deep learning",
	"ci/cd":     "continuous integration",
	"cicd":      "continuous integration",
	"k8s":       "kubernetes",
	"qa":        "quality assurance",
	"seo":       "search engine optimization",
	"golang":    "go",
	"cpp":       "c++",
	"cplusplus": "c++",
	"csharp":    "c#",
	"dotnet":    ".net",
	"fe":        "frontend",
	"be":        "backend",
	"fs":        "fullstack",
	"cad":       "computer aided design",
	"cam":       "computer aided manufacturing",
	"cae":       "computer aided engineering",
	"fea":       "finite element analysis",
	"cfd":       "computational fluid dynamics",
	"gd&t":      "geometric dimensioning and tolerancing",
	"hvac":      "heating ventilation and air conditioning",
	"bms":       "building management system",
	"plc":       "programmable logic controller",
	"scada":     "supervisory control and data acquisition",
	"pcb":       "printed circuit board",
	"vlsi":      "very large scale integration",
	"bim":       "building information modeling",
	"mep":       "mechanical electrical plumbing",
	"iot":       "internet of things",
}

//nolint:gochecknoglobals // Static vocabulary
var builtinCertifications = []string{
	"pmp", "aws certified", "azure certified", "google cloud certified",
	"comptia", "cissp", "ccna", "ccnp", "itil", "six sigma", "cpa",
	"cfa", "shrm", "ocp", "mcp", "ceh", "certified ethical hacker",
	"project management professional", "scrum master", "csm", "psm",
	"aws solutions architect", "ckad", "cka", "cksa", "oci", "gcp",
	"pance", "comlex", "usmle", "nclex",
	"bar exam", "jd", "llm",
	"pe", "fe", "eit",
	"prince2", "safe", "togaf", "cism", "cisa",
}

//nolint:gochecknoglobals // Static vocabulary
var builtinEducationLevels = map[EducationLevel][]string{
	LevelPhD:      {"phd", "doctorate", "ph.d"},
	LevelMaster:   {"master", "ms", "m.s", "mtech", "m.tech", "mba", "m.b.a", "ma", "m.a"},
	LevelBachelor: {"bachelor", "bs", "b.s", "btech", "b.tech", "be", "b.e", "ba", "b.a", "undergraduate"},
}

//nolint:gochecknoglobals // Static vocabulary
var builtinLocations = []string{
	"india", "bangalore", "mumbai", "delhi", "hyderabad",
	"pune", "chennai", "kolkata", "usa", "uk", "canada",
}
