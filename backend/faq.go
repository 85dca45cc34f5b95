package backend

// InitialFAQ is the seed set installed by AddInitialFAQEntries.
var InitialFAQ = []FAQEntry{
	{
		Question: "Is Alex available for hire or internships?",
		Answer:   "Yes. Alex is open to full-time roles, internships and freelance ML projects starting mid-2025.",
	},
	{
		Question: "Where is Alex located and can he work remotely?",
		Answer:   "Alex is based in India and is comfortable with remote, hybrid or on-site work.",
	},
	{
		Question: "What languages does Alex speak?",
		Answer:   "English and Hindi, both fluently.",
	},
	{
		Question: "What research interests does Alex have?",
		Answer:   "Efficient deep learning, retrieval-augmented NLP and reinforcement learning for robotics.",
	},
	{
		Question: "Which hackathon did Alex win?",
		Answer:   "First place at the Smart India Hackathon 2022 with an AI crop disease detector.",
	},
	{
		Question: "How quickly does Alex reply to messages?",
		Answer:   "Usually within 24 hours. The contact form or email both work.",
	},
}
