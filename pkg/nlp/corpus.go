package nlp

// Intent categories. The corpus covers every category the classifier can
// produce except the synthetic ones resolved elsewhere: "introduce" (name
// pattern), "redirect" and "default" (template-only).
const (
	CategoryGreeting      = "greeting"
	CategoryName          = "name"
	CategoryMood          = "mood"
	CategoryBye           = "bye"
	CategoryJoke          = "joke"
	CategorySmallTalk     = "small_talk"
	CategoryCompanyInfo   = "company_info"
	CategoryProducts      = "products"
	CategoryServices      = "services"
	CategoryContact       = "contact"
	CategoryWebsite       = "website"
	CategoryAbout         = "about"
	CategoryThankYou      = "thank_you"
	CategoryPricing       = "pricing"
	CategoryTimeline      = "timeline"
	CategoryPortfolio     = "portfolio"
	CategoryCapabilities  = "capabilities"
	CategoryCareers       = "careers"
	CategoryPartnership   = "partnership"
	CategoryRefundPolicy  = "refund_policy"
	CategoryPrivacyPolicy = "privacy_policy"
	CategorySecurity      = "security"
	CategoryTestimonials  = "testimonials"
	CategorySupport       = "support"
	CategoryMaintenance   = "maintenance"
	CategoryIntroduce     = "introduce"
	CategoryRedirect      = "redirect"
	CategoryDefault       = "default"
)

// DefaultCorpus returns the example utterances per intent category. Order
// matters: the keyword matcher walks categories in this order and the first
// hit wins.
func DefaultCorpus() []CategoryExamples {
	return []CategoryExamples{
		{Category: CategoryGreeting, Examples: []string{
			"hello", "hi", "hey", "hello there", "hey there", "hi there",
			"greetings", "good day", "good morning", "good afternoon",
			"good evening", "howdy", "what's up", "yo", "hi friend",
			"hello again", "morning", "hi, nice to meet you",
		}},
		{Category: CategoryName, Examples: []string{
			"what's your name", "who are you", "what do they call you",
			"who is this", "can you tell me your name", "do you have a name",
			"what should i call you", "can you introduce yourself",
			"introduce yourself", "what are you called", "who am i talking to",
			"identify yourself", "are you a bot", "are you an ai",
			"are you a chatbot", "are you a virtual assistant", "who created you",
		}},
		{Category: CategoryMood, Examples: []string{
			"how are you", "how's your day", "how are you doing",
			"how do you feel", "how's it going", "how are you today",
			"how are you feeling", "are you well", "how have you been",
			"how's everything", "how's life", "are you okay", "you good",
			"are you having a good day", "what's your status", "are you happy",
		}},
		{Category: CategoryBye, Examples: []string{
			"goodbye", "see you later", "bye", "farewell", "catch you later",
			"see you soon", "goodbye for now", "bye-bye", "take care",
			"until next time", "gotta go", "talk to you later", "signing off",
			"see ya", "bye for now", "adios", "ciao", "have a good day",
			"good night", "so long",
		}},
		{Category: CategoryJoke, Examples: []string{
			"tell me a joke", "do you know any jokes", "make me laugh",
			"can you tell a joke", "i want to hear a joke",
			"tell me something funny", "do you have any jokes", "make me smile",
			"got any jokes", "say something funny", "humor me",
			"tell me a programming joke", "crack a joke", "any dad jokes",
			"give me a pun", "tell me a one-liner",
		}},
		{Category: CategorySmallTalk, Examples: []string{
			"what are you doing", "what's new", "what's happening",
			"what's going on", "how's your week", "what have you been up to",
			"anything new", "what's the latest", "how's business",
			"anything interesting", "got any news", "anything exciting",
			"just wanted to chat", "just checking in", "what's trending",
		}},
		{Category: CategoryCompanyInfo, Examples: []string{
			"tell me about your company", "what does your company do",
			"what is your company", "who are you guys", "what's your business",
			"tell me about your business", "company information",
			"what does your company specialize in", "company details",
			"company overview", "what industry are you in", "what's your mission",
			"are you a startup", "describe your organization",
			"how big is your company", "where is your company located",
			"what's your business model",
		}},
		{Category: CategoryProducts, Examples: []string{
			"what products do you offer", "what do you sell",
			"show me your products", "what can i buy from you",
			"list your products", "product information",
			"what products do you have", "tell me about your products",
			"products overview", "what's your product line", "what can you build",
			"do you have ai products", "do you offer any apps",
			"what do you develop", "do you provide mobile apps",
			"what's your flagship product", "do you have a product catalog",
		}},
		{Category: CategoryServices, Examples: []string{
			"what services do you provide", "what do you do", "services offered",
			"what can you help me with", "list your services",
			"service information", "what services do you have",
			"tell me about your services", "how can you help me",
			"services overview", "do you offer consulting",
			"do you provide maintenance", "do you do development",
			"do you do ai services", "do you offer training",
			"can you build mobile apps", "can you develop websites",
		}},
		{Category: CategoryContact, Examples: []string{
			"how can i contact you", "contact information", "how do i reach you",
			"what's your contact info", "contact details",
			"how do i get in touch", "contact number", "email address",
			"what's your email", "phone number", "how to contact",
			"where are you located", "office address", "physical address",
			"how do i email you", "do you have a hotline",
			"how do i send a message",
		}},
		{Category: CategoryWebsite, Examples: []string{
			"what's your website", "do you have a website", "website link",
			"what's your url", "company website", "where can i find your website",
			"where can i find you online", "web address", "what's your domain",
			"website address", "can i see your website", "official website",
			"show me your site", "where is your homepage",
			"send me your website link",
		}},
		{Category: CategoryAbout, Examples: []string{
			"about your company", "company background", "tell me your story",
			"company history", "who you are", "company mission",
			"what's your company about", "company vision", "company values",
			"what do you stand for", "company culture", "what's your purpose",
			"why do you exist", "how did you start", "what's your origin",
			"what drives your company", "do you have a motto",
		}},
		{Category: CategoryThankYou, Examples: []string{
			"thank you", "thanks", "thanks a lot", "thank you so much",
			"appreciate it", "thanks for your help",
			"thank you for the information", "many thanks", "thanks a bunch",
			"appreciate your help", "thank you kindly", "i appreciate it",
			"much appreciated", "cheers for that", "thanks for the insight",
			"that's perfect, thank you",
		}},
		{Category: CategoryPricing, Examples: []string{
			"how much does it cost", "what are your prices",
			"pricing information", "cost details", "how much do you charge",
			"what's your rate", "fee structure", "price list", "what's the cost",
			"how expensive is it", "what's the price range", "payment terms",
			"quote request", "what's your pricing model", "do you charge hourly",
			"do you give discounts", "are there hidden fees",
			"can i get a rough estimate",
		}},
		{Category: CategoryTimeline, Examples: []string{
			"how long does it take", "what's the timeline", "turnaround time",
			"development time", "project duration", "how quickly can you deliver",
			"completion timeframe", "estimated time", "delivery schedule",
			"project timeline", "how soon can you start",
			"how fast can you deliver", "time to finish", "timeframe",
			"when can i expect results", "when will it be done",
			"can you meet tight deadlines",
		}},
		{Category: CategoryPortfolio, Examples: []string{
			"show me your work", "previous projects", "case studies",
			"client examples", "portfolio showcase", "past work",
			"success stories", "project examples", "work samples",
			"previous clients", "sample work", "project gallery",
			"what have you built", "who have you worked with",
			"what's your track record", "any highlight projects",
			"do you have a project showcase",
		}},
		{Category: CategoryCapabilities, Examples: []string{
			"what can you do", "technical capabilities", "technology stack",
			"expertise areas", "technical skills", "what technologies do you use",
			"development capabilities", "what languages do you code in",
			"skill set", "areas of expertise", "tech stack",
			"programming languages", "do you do machine learning",
			"do you do web dev", "do you do mobile dev", "are you full-stack",
			"do you handle ai chatbots", "do you do api integrations",
		}},
		{Category: CategoryCareers, Examples: []string{
			"are you hiring", "any job openings", "open positions",
			"job vacancies", "do you have internships", "career opportunities",
			"can i apply for a job", "how do i join your team",
			"looking for developers", "what's your hiring process",
			"where can i submit my resume", "do you have remote jobs",
			"are you recruiting now", "are you open to freelance workers",
		}},
		{Category: CategoryPartnership, Examples: []string{
			"do you do partnerships", "are you open to collaboration",
			"how can i partner with you", "strategic partnership inquiry",
			"can we form an alliance", "do you do joint ventures",
			"do you collaborate with startups", "looking for business partners",
			"how do i propose a partnership", "any affiliate programs",
			"do you do technology partnerships",
			"how do i pitch a partnership idea",
		}},
		{Category: CategoryRefundPolicy, Examples: []string{
			"what is your refund policy", "can i get my money back",
			"do you offer refunds", "how do i request a refund",
			"money-back guarantee", "do you have a returns policy",
			"can i cancel and get a refund", "do you offer partial refunds",
			"who do i contact about a refund", "any cancellation fees",
			"do you have a satisfaction guarantee", "can i dispute a charge",
		}},
		{Category: CategoryPrivacyPolicy, Examples: []string{
			"what is your privacy policy", "how do you handle my data",
			"do you collect personal information",
			"where can i read your data policy", "how do you store user info",
			"do you share data with third parties", "do you comply with gdpr",
			"how do you protect user privacy", "what data do you track",
			"do you sell user data", "can i delete my data",
			"do you have a data retention policy",
		}},
		{Category: CategorySecurity, Examples: []string{
			"is your platform secure", "what security measures do you have",
			"do you encrypt data", "are my transactions safe",
			"do you use ssl/tls", "how do you protect against hacking",
			"do you conduct penetration testing",
			"how do you handle data breaches", "is my password safe",
			"are payments handled securely",
			"do you have multi-factor authentication", "do you have security audits",
		}},
		{Category: CategoryTestimonials, Examples: []string{
			"do you have testimonials", "can i read customer reviews",
			"any feedback from your clients", "what do people say about you",
			"do you have success stories", "are there client references",
			"can i see some recommendations", "where can i find user reviews",
			"how do clients rate your services", "do you have public case studies",
			"do you have a testimonial page", "can i see your ratings",
		}},
		{Category: CategorySupport, Examples: []string{
			"do you have customer support", "how do i get help",
			"can i open a support ticket", "who do i contact for issues",
			"what's your support process", "do you offer 24/7 support",
			"can i chat with support", "how do i reach technical assistance",
			"do you have phone support", "is there an email for help",
			"how do i escalate an issue", "where can i report bugs",
			"do you have a knowledge base",
		}},
		{Category: CategoryMaintenance, Examples: []string{
			"do you provide maintenance services", "how do you handle updates",
			"what's your maintenance plan", "do you offer post-launch support",
			"do you have ongoing maintenance packages",
			"how do you fix bugs after deployment",
			"do you handle software patches", "can you maintain my existing system",
			"do you provide version upgrades",
			"how do you handle emergency fixes",
			"do you have a long-term support plan", "do you do site backups",
		}},
	}
}

// DefaultBusinessEntities maps surface terms to their coarse entity label.
// The extractor scans these as case-insensitive substrings.
func DefaultBusinessEntities() map[string]string {
	return map[string]string{
		"software":                    LabelProduct,
		"website":                     LabelProduct,
		"mobile app":                  LabelProduct,
		"application":                 LabelProduct,
		"development":                 LabelService,
		"consulting":                  LabelService,
		"design":                      LabelService,
		"training":                    LabelService,
		"support":                     LabelService,
		"maintenance":                 LabelService,
		"AI":                          LabelTechnology,
		"artificial intelligence":     LabelTechnology,
		"machine learning":            LabelTechnology,
		"NLP":                         LabelTechnology,
		"natural language processing": LabelTechnology,
		"chatbot":                     LabelProduct,
		"blockchain":                  LabelTechnology,
		"cloud":                       LabelTechnology,
		"web app":                     LabelProduct,
		"mobile application":          LabelProduct,
	}
}

// FollowUpPhrases binds a category to the short elliptical continuations that
// re-select it when the previous turn already pointed there.
type FollowUpPhrases struct {
	Category string
	Phrases  []string
}

// DefaultFollowUpPhrases returns the follow-up lookback table.
func DefaultFollowUpPhrases() []FollowUpPhrases {
	return []FollowUpPhrases{
		{Category: CategoryProducts, Phrases: []string{
			"which ones", "what are they", "tell me more", "features", "benefits",
		}},
		{Category: CategoryServices, Phrases: []string{
			"what services", "tell me more", "how do you", "can you help",
		}},
		{Category: CategoryPricing, Phrases: []string{
			"how much", "cost", "price", "expensive", "cheap", "affordable",
		}},
		{Category: CategoryTimeline, Phrases: []string{
			"how long", "when", "time", "schedule", "deadline", "deliver",
		}},
	}
}
