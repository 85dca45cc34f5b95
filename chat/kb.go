package chat

const (
	// Welcome opens every transcript.
	Welcome = "Hi! I'm Alex's AI assistant. Ask me anything about the portfolio: skills, projects, experience, education, or how to contact Alex."
	// Fallback is the reply when nothing matches.
	Fallback = "I'm not sure about that, but I can answer questions about Alex's **skills**, **projects**, **experience**, **education**, **resume**, or **contact info**. Try asking one of those topics!"
)

// QuickPrompts are offered as one-tap questions.
var QuickPrompts = []string{
	"What are Alex's skills?",
	"Tell me about projects",
	"How to contact Alex?",
	"Work experience",
}

// DefaultKB is the built-in knowledge base. Order matters: the first keyword
// found in the query wins.
var DefaultKB = []Entry{
	{"skills", "Alex has strong expertise in: **Programming** (Python 90%, C++ 75%, JavaScript 70%, SQL 80%), **AI/ML Frameworks** (TensorFlow 85%, PyTorch 88%, Scikit-learn 82%, Keras 80%, OpenCV 75%), **Data Science** (Pandas, NumPy, Matplotlib, Seaborn), and **Cloud/Tools** (AWS, GCP, Docker, Git, Linux)."},
	{"projects", "Alex has built 6 notable projects: Neural Style Transfer App (VGG19), Real-time Object Detection (YOLOv8), Sentiment Analysis Dashboard (BERT, 94% accuracy), Predictive Maintenance ML (XGBoost), AI Chatbot with RAG (LangChain), and Autonomous Drone Navigation (Reinforcement Learning)."},
	{"experience", "Alex's experience includes: **2024** - ML Research Intern at TechCorp AI Lab (improved NLP accuracy by 15%), **2023** - Data Science Intern at DataVision Analytics (reduced client churn by 20%), and multiple certifications and hackathon wins."},
	{"internship", "Alex has completed 2 internships: ML Research Intern at TechCorp AI Lab (2024) and Data Science Intern at DataVision Analytics (2023)."},
	{"education", "Alex is pursuing a **B.Tech in Artificial Intelligence & Machine Learning** at XYZ University (2021-2025). He is on the Dean's List (top 5% of cohort) and has earned NPTEL certifications in Deep Learning and Python for Data Science."},
	{"degree", "B.Tech in Artificial Intelligence & Machine Learning at XYZ University, graduating 2025. Dean's List student."},
	{"contact", "You can reach Alex at: **Email**: alex.chen@email.com | **GitHub**: github.com/alexchen | **LinkedIn**: linkedin.com/in/alexchen. He's available for full-time roles, internships, and freelance projects!"},
	{"email", "Alex's email is **alex.chen@email.com**. He typically responds within 24 hours."},
	{"github", "Find Alex's code at **github.com/alexchen**, featuring 6+ AI/ML projects with full source code."},
	{"linkedin", "Connect with Alex on LinkedIn at **linkedin.com/in/alexchen**."},
	{"resume", "Alex's resume is available in the Resume section. You can preview it there or download the PDF. It covers education, 2 internships, 6 projects, and certifications."},
	{"download", "Go to the Resume section to preview and download Alex's ATS-optimized PDF resume."},
	{"hello", "Hi there! I'm Alex's AI portfolio assistant. Ask me about his skills, projects, experience, or how to get in touch!"},
	{"hi", "Hey! Happy to help. What would you like to know about Alex Chen's portfolio?"},
	{"about", "Alex Chen is a passionate AIML Engineer pursuing a B.Tech (2021-2025). He specializes in building production-ready ML systems with a focus on deep learning and NLP. He's completed 2 internships, built 6+ AI projects, and won the Smart India Hackathon."},
	{"awards", "Alex won **1st Place at the Smart India Hackathon** (2022) with an AI-based crop disease detection system. He also earned NPTEL Elite+Gold (92%) and Elite+Silver (85%) medals in Data Science certifications."},
	{"certification", "Alex has earned: NPTEL Deep Learning (Elite+Silver, 85%, IIT Madras 2023) and NPTEL Python for Data Science (Elite+Gold, 92%, IIT Madras 2022)."},
	{"tensorflow", "Alex uses TensorFlow (85% proficiency) for production model training, TFLite for edge deployment, and model serving. He's used it in the Neural Style Transfer and Drone Navigation projects."},
	{"pytorch", "Alex's strongest framework is PyTorch (88% proficiency). Used for research-grade deep learning, custom CUDA kernels, and the Object Detection and Chatbot projects."},
	{"python", "Python is Alex's primary language (90% proficiency). He uses it for ML pipelines, data science, API development with FastAPI/Flask, and everything AI-related."},
}
