package chatbot

import "PortfolioGolang/pkg/nlp"

// SympathyResponse and EnthusiasmResponse replace the category template when
// sentiment is strong enough; see the turn service.
const (
	SympathyResponse   = "I'm sorry to hear that you're feeling down. Is there anything I can do to help?"
	EnthusiasmResponse = "That's great to hear! I'm glad you're feeling positive."
)

// ResponseTemplates maps every category to its response variants. One is
// picked uniformly at random per turn and rendered against the company
// profile.
func ResponseTemplates() map[string][]string {
	return map[string][]string{
		nlp.CategoryGreeting: {
			"Hello! Welcome to {company_name}. How may I assist you today?",
			"Hi there! I'm delighted to welcome you to {company_name}. How can I help you?",
			"Greetings! Thanks for reaching out to {company_name}. What can I do for you today?",
			"Welcome to {company_name}! How may I be of service to you?",
			"Hello and welcome! How can I assist you with {company_name}'s services today?",
			"Hi! Thank you for contacting {company_name}. How can I help you today?",
			"Good day! Welcome to {company_name}. What brings you here today?",
			"Hello! It's a pleasure to welcome you to {company_name}. How may I assist you?",
		},
		nlp.CategoryName: {
			"I'm an AI assistant from {company_name}, designed to help with your inquiries.",
			"You can call me Kimi, your virtual assistant from {company_name}.",
			"I'm your digital concierge from {company_name}, here to assist with any questions.",
			"I'm the AI representative for {company_name}, ready to help with your needs.",
			"I'm Kimi, a virtual assistant powered by {company_name}'s AI technology.",
			"I'm a digital assistant from {company_name}, programmed to provide support and information.",
			"I'm an AI-powered helper from {company_name}, designed to assist customers like you.",
		},
		nlp.CategoryMood: {
			"I'm functioning optimally and ready to assist you with any {company_name} related inquiries!",
			"I'm doing well, thank you for asking! How may I help you with {company_name}'s services today?",
			"I'm in excellent condition and eager to assist with your queries about {company_name}.",
			"I'm operational and ready to provide you with information about {company_name}. How can I help?",
			"I'm at your service and prepared to address any questions regarding {company_name}.",
			"I'm always ready to assist our valued customers. What can I help you with regarding {company_name}?",
		},
		nlp.CategoryBye: {
			"Goodbye! Thank you for connecting with {company_name}. We look forward to assisting you again soon.",
			"Farewell! It was a pleasure serving you. Feel free to reach out to {company_name} anytime.",
			"Thank you for chatting with {company_name}. Have a wonderful day ahead!",
			"It was a pleasure assisting you. {company_name} appreciates your interest. Goodbye!",
			"Thank you for your time. {company_name} is always here to help. Have a great day!",
			"Until next time! {company_name} values your connection. Goodbye!",
			"Thanks for chatting! Remember, {company_name} is just a message away whenever you need assistance.",
		},
		nlp.CategoryJoke: {
			"Why do programmers prefer dark mode? Because light attracts bugs!",
			"Why don't scientists trust atoms? Because they make up everything!",
			"What's a computer's favorite snack? Microchips!",
			"Why did the developer go broke? Because they lost their domain!",
			"How many programmers does it take to change a light bulb? None, that's a hardware problem!",
			"Why was the computer cold? It left its Windows open!",
			"What do you call a computer that sings? A Dell!",
		},
		nlp.CategorySmallTalk: {
			"I'm here and ready to assist. How has your day been so far?",
			"Nothing much, just helping customers like you! How's your day going?",
			"I'm here to make your experience with {company_name} exceptional. How's your day treating you?",
			"Just assisting our valued clients at {company_name}. How about yourself?",
			"I'm focused on providing excellent service to you. How has your day been?",
		},
		nlp.CategoryCompanyInfo: {
			"{company_name} specializes in {industry}. Our mission is: {mission}",
			"Let me tell you about {company_name}. We are leaders in {industry} with a mission to {mission}",
			"{company_name} is dedicated to {mission} within the {industry}.",
			"As a key player in the {industry}, {company_name} is committed to {mission}.",
			"Our company, {company_name}, focuses on {mission} as part of our contribution to the {industry}.",
		},
		nlp.CategoryProducts: {
			"{company_name} offers a range of products including: {products_list}",
			"Our product lineup at {company_name} includes: {products_list}",
			"At {company_name}, we've developed various products such as: {products_list}",
			"{company_name}'s product portfolio features: {products_list}",
			"We're proud to offer the following products at {company_name}: {products_list}",
		},
		nlp.CategoryServices: {
			"{company_name} provides various services including: {services_list}",
			"Our service offerings at {company_name} include: {services_list}",
			"At {company_name}, we specialize in services such as: {services_list}",
			"{company_name}'s professional services encompass: {services_list}",
			"We offer a comprehensive range of services at {company_name}, including: {services_list}",
		},
		nlp.CategoryContact: {
			"You can contact {company_name} via email at {contact_info} or visit our website at {website}.",
			"For inquiries, please reach out to us at {contact_info} or check our website: {website}",
			"Feel free to contact us at {contact_info} or browse our website {website} for more information.",
			"To get in touch with {company_name}, email us at {contact_info} or visit {website}.",
			"Have questions? Contact us at {contact_info} or explore our website {website}.",
		},
		nlp.CategoryWebsite: {
			"You can explore our offerings at {website}. Would you like me to guide you through specific sections?",
			"Our website is available at {website}. It contains comprehensive information about our products and services.",
			"Visit us at {website} to learn more about {company_name} and what we offer.",
			"All the details about our company are available on our website: {website}",
			"For a complete overview of {company_name}, please visit {website}.",
		},
		nlp.CategoryAbout: {
			"About {company_name}: {about}",
			"Here's what makes {company_name} special: {about}",
			"The essence of {company_name}: {about}",
			"Our story at {company_name}: {about}",
			"{company_name}'s core values and mission: {about}",
		},
		nlp.CategoryThankYou: {
			"You're welcome! It's my pleasure to assist you with {company_name}'s services.",
			"Happy to help! Is there anything else you'd like to know about {company_name}?",
			"It's my pleasure to be of service. {company_name} values your interest.",
			"You're most welcome! {company_name} is committed to providing excellent customer service.",
			"No problem at all! {company_name} appreciates your engagement.",
		},
		nlp.CategoryPricing: {
			"Our pricing at {company_name} varies based on project specifications and requirements. Would you like to discuss a specific service for a customized quote?",
			"{company_name} offers tailored pricing solutions based on your needs. May I know which service you're interested in?",
			"At {company_name}, we provide custom quotes depending on project scope. Which service are you inquiring about?",
			"Our pricing structure at {company_name} is customized for each client. Would you like to schedule a consultation to discuss your specific needs?",
			"{company_name} offers competitive pricing in the {industry}. For detailed quotes, could you specify which service you're interested in?",
		},
		nlp.CategoryTimeline: {
			"Project timelines at {company_name} depend on scope and complexity. Could you share more details about your project for a more accurate estimate?",
			"At {company_name}, we determine development timelines based on project requirements. What kind of project are you considering?",
			"The timeline for {company_name} projects varies based on specific needs. Could you tell me more about what you're looking to achieve?",
			"We pride ourselves on efficient delivery at {company_name}. To provide an estimated timeline, could you share some project details?",
			"{company_name} works diligently to meet project deadlines. For a specific timeline, I'd need to know more about your project scope.",
		},
		nlp.CategoryPortfolio: {
			"{company_name} has successfully completed numerous projects in the {industry}. Would you like to discuss specific case studies?",
			"Our portfolio at {company_name} showcases our expertise in {industry}. Are you interested in a particular type of project?",
			"{company_name} has an extensive track record of successful implementations. Which aspect of our work interests you most?",
			"We've delivered various solutions at {company_name} across different sectors. Would you like to hear about specific examples?",
			"{company_name}'s portfolio demonstrates our capability in delivering high-quality solutions. Which industry examples would you like to explore?",
		},
		nlp.CategoryCapabilities: {
			"{company_name} specializes in {products_list} and offers services including {services_list}. Which capability interests you?",
			"Our technical expertise at {company_name} covers {products_list}. Is there a specific capability you'd like to explore?",
			"{company_name} has robust capabilities in developing {products_list}. Would you like more details on any specific area?",
			"At {company_name}, we excel in {services_list}. Which of these aligns with your needs?",
			"Our team at {company_name} is skilled in various technologies and methodologies for {products_list}. Is there a particular capability you're curious about?",
		},
		nlp.CategoryRedirect: {
			"That's an interesting topic! While I'd love to explore that further, I'm specialized in providing information about {company_name} and our offerings in the {industry}. Is there something specific about our services I can help with?",
			"I appreciate your question! My primary focus is assisting with {company_name}'s services and products. How may I help you with your {industry} needs today?",
			"Thanks for sharing that! As {company_name}'s assistant, I'm here to help with your inquiries related to our offerings in {industry}. Is there something specific I can assist you with?",
			"That's a fascinating point! To best serve you, I'd like to focus on how {company_name} can meet your needs in the {industry}. What particular services are you interested in?",
			"I understand your interest in that topic. As {company_name}'s virtual assistant, I'm designed to provide information on our {industry} solutions. How can I help you with our services today?",
		},
		nlp.CategoryDefault: {
			"I'm not quite sure I understand. Could you please rephrase your question about {company_name} or our services?",
			"I apologize, but I didn't catch that. Could you please clarify what you'd like to know about {company_name}?",
			"I'm still learning and may have missed your point. Could you rephrase your question about our {industry} services?",
			"I want to provide the best assistance possible. Could you please restate your question about {company_name}?",
			"I apologize for any confusion. Could you please elaborate on your inquiry regarding {company_name}'s services?",
			"I'm sorry, but I'm not sure I fully understand your request. Could you provide more details about what you're looking for from {company_name}?",
		},
		nlp.CategoryCareers: {
			"Thank you for your interest in {company_name}. Currently, we're not hiring, but we'll advertise new positions on {website} once they become available.",
			"We appreciate your enthusiasm about joining {company_name}. There are no openings right now, but please check {website} or call {support_phone} for future updates.",
			"At the moment, {company_name} has no active vacancies. Keep an eye on {website} or reach out via {support_phone} for any upcoming opportunities.",
		},
		nlp.CategoryPartnership: {
			"Yes, {company_name} is open to partnerships and collaborations! Feel free to visit {website} or call {support_phone} anytime for more details.",
			"We welcome collaboration at {company_name}. For partnership inquiries, please explore {website} or contact us at {support_phone}.",
			"Looking to partner with {company_name}? We'd love to discuss your ideas. Visit {website} or dial {support_phone} for more info.",
		},
		nlp.CategoryRefundPolicy: {
			"For refund-related concerns, please review our policy on {website} or email us at {contact_info}. We handle each case individually.",
			"We do our best to accommodate refund requests at {company_name}. Kindly check {website} for details or call {support_phone} to discuss your situation.",
			"Refunds are assessed on a case-by-case basis at {company_name}. Visit {website} or reach out via {contact_info} for assistance.",
		},
		nlp.CategoryPrivacyPolicy: {
			"We take privacy seriously at {company_name}. You can find our full policy on {website} or contact us at {contact_info} for more info.",
			"Your data security is a priority at {company_name}. Check {website} for our privacy policy or call {support_phone} if you have questions.",
			"At {company_name}, we respect user privacy. Please visit {website} to read our policy, or email {contact_info} for clarifications.",
		},
		nlp.CategorySecurity: {
			"Security is paramount at {company_name}. We use robust encryption and conduct regular audits. Learn more on {website} or call {support_phone}.",
			"Rest assured, {company_name} employs industry-leading security measures to protect your data. For details, visit {website} or email {contact_info}.",
			"We prioritize cybersecurity at {company_name}, from SSL/TLS encryption to secure hosting. For specifics, see {website} or call {support_phone}.",
		},
		nlp.CategoryTestimonials: {
			"You can find client feedback and success stories on {website}. We appreciate all testimonials at {company_name}!",
			"Curious about what people say? Check out {website} for {company_name}'s testimonials, or call {support_phone} to share your own experience.",
			"We love hearing from satisfied customers. Visit {website} to read or submit testimonials for {company_name}.",
		},
		nlp.CategorySupport: {
			"For support or technical help, please email {contact_info} or call {support_phone}. {company_name} is here to assist you.",
			"Need assistance? {company_name} offers support through {contact_info} and phone at {support_phone}. We'll be happy to help!",
			"Our support team is ready to assist. Contact {company_name} via {contact_info} or dial {support_phone} anytime.",
		},
		nlp.CategoryMaintenance: {
			"Yes, {company_name} provides ongoing maintenance and updates. Check {website} or call {support_phone} for details.",
			"We offer maintenance packages to keep your solutions running smoothly. Visit {website} or contact {support_phone} for more info.",
			"Ongoing support and maintenance are part of {company_name}'s services. Please reach out via {website} or {support_phone}.",
		},
	}
}
