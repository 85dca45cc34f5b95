package main

// section is one page of the portfolio.
type section struct {
	id    string
	title string
	lines []string
	// more is shown when the section is expanded with a swipe up.
	more []string
}

var sections = []section{
	{
		id:    "hero",
		title: "Alex Chen",
		lines: []string{
			"AI / ML engineer",
			"",
			"Swipe left or right to move between sections.",
			"Pinch the network above to zoom, shake to reset it.",
			"Double-tap anywhere to switch theme.",
		},
	},
	{
		id:    "about",
		title: "About",
		lines: []string{
			"Machine learning engineer focused on vision and language models",
			"that leave the notebook and run in production.",
		},
		more: []string{
			"",
			"Started out training small classifiers on hobby datasets and",
			"ended up building the pipelines that ship them.",
			"Contributes to open-source ML tooling and writes about it.",
		},
	},
	{
		id:    "skills",
		title: "Skills",
		lines: []string{
			"Python, Go, TypeScript",
			"PyTorch, TensorFlow, scikit-learn",
			"Computer vision, NLP, MLOps",
			"Docker, Kubernetes, cloud GPUs",
		},
	},
	{
		id:    "projects",
		title: "Projects",
	},
	{
		id:    "experience",
		title: "Experience",
		lines: []string{
			"Senior ML Engineer     2022 - now",
			"ML Engineer            2020 - 2022",
			"Data Scientist         2018 - 2020",
		},
	},
	{
		id:    "resume",
		title: "Resume",
		lines: []string{
			"Swipe up to preview, down to close.",
		},
		more: []string{
			"",
			"M.S. Computer Science, machine learning track",
			"Six years of production ML across vision and text",
			"Speaker at two regional ML meetups",
		},
	},
	{
		id:    "contact",
		title: "Contact",
	},
}

// project is one card in the projects carousel.
type project struct {
	title string
	blurb string
}

var projects = []project{
	{"Neural Style Transfer App", "Applies artistic styles to photos in real time."},
	{"Real-time Object Detection System", "YOLO-based detection on live video streams."},
	{"Sentiment Analysis Dashboard", "Tracks brand sentiment across social feeds."},
	{"Predictive Maintenance ML Model", "Forecasts equipment failure from sensor data."},
	{"AI Chatbot with RAG", "Answers questions over a private document store."},
	{"Autonomous Drone Navigation", "Reinforcement learning for obstacle avoidance."},
}

func sectionIndex(id string) int {
	for i, s := range sections {
		if s.id == id {
			return i
		}
	}
	return -1
}
