package nlp

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// faqFuzzyThreshold is the minimum fuzz ratio (0-100 scale) a question must
// strictly exceed to count as a fuzzy FAQ hit.
const faqFuzzyThreshold = 80

// FAQTable is the fixed question->answer lookup consulted before any other
// classification. The slice order makes fuzzy tie-breaking deterministic:
// the first entry to reach the running maximum wins.
type FAQTable struct {
	entries []FAQEntry
	byQ     map[string]int
}

func NewFAQTable(entries []FAQEntry) *FAQTable {
	byQ := make(map[string]int, len(entries))
	for i, entry := range entries {
		byQ[normalize(entry.Question)] = i
	}
	return &FAQTable{entries: entries, byQ: byQ}
}

// Match returns the FAQ entry for text, trying an exact lookup on the
// normalized input first and a fuzzy ratio scan second. A fuzzy hit must
// score strictly above the threshold; among equal scores the earliest entry
// is kept.
func (t *FAQTable) Match(text string) (FAQEntry, bool) {
	cleaned := normalize(text)

	if i, ok := t.byQ[cleaned]; ok {
		return t.entries[i], true
	}

	bestScore := 0
	bestIdx := -1
	for i, entry := range t.entries {
		score := fuzzy.Ratio(cleaned, strings.ToLower(entry.Question))
		if score > faqFuzzyThreshold && score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return FAQEntry{}, false
	}
	return t.entries[bestIdx], true
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// DefaultFAQTable returns the canned question/answer pairs. Responses are
// templates rendered against the company profile like any other.
func DefaultFAQTable() *FAQTable {
	return NewFAQTable([]FAQEntry{
		{
			Question: "what technologies do you use",
			Response: "At {company_name}, we utilize a variety of cutting-edge technologies including Python, Django, React, Node.js, TensorFlow, and other AI frameworks to deliver robust software solutions.",
			Category: CategoryCapabilities,
		},
		{
			Question: "how do i get started",
			Response: "Getting started with {company_name} is easy! We begin with a consultation to understand your needs, then provide a proposal with timeline and pricing. Once approved, our development team starts working on your project with regular updates throughout the process.",
			Category: CategoryDefault,
		},
		{
			Question: "can you build custom software",
			Response: "Absolutely! {company_name} specializes in custom software development tailored to your specific business needs. We handle everything from design to deployment and ongoing maintenance.",
			Category: CategoryCapabilities,
		},
		{
			Question: "do you offer maintenance",
			Response: "Yes, {company_name} provides comprehensive maintenance and support services for all our software solutions. We offer various support packages to ensure your applications run smoothly long after deployment.",
			Category: CategoryServices,
		},
		{
			Question: "what makes you different",
			Response: "{company_name} stands out through our commitment to innovation, excellence, and customer satisfaction. We combine technical expertise with a deep understanding of business needs, creating solutions that truly transform operations.",
			Category: CategoryAbout,
		},
		{
			Question: "what's your company mission",
			Response: "Our mission at {company_name} is to empower businesses with cutting-edge technology solutions that drive growth and success. We strive to deliver exceptional software products and services that exceed client expectations.",
			Category: CategoryAbout,
		},
		{
			Question: "how do i contact support",
			Response: "You can reach our support team by emailing {contact_info} or calling our main line. We're here to help you with any issues or questions!",
			Category: CategorySupport,
		},
		{
			Question: "are you open to partnerships",
			Response: "Yes, {company_name} welcomes partnership opportunities! Please visit our website at {website} or reach out via {contact_info} to discuss potential collaborations.",
			Category: CategoryPartnership,
		},
		{
			Question: "what is your refund policy",
			Response: "We handle refunds on a case-by-case basis at {company_name}. Please check {website} for our detailed refund policy or contact us directly at {contact_info}.",
			Category: CategoryRefundPolicy,
		},
		{
			Question: "how do you ensure data privacy",
			Response: "At {company_name}, we take data privacy seriously. We comply with relevant regulations and employ robust security measures. You can read our full privacy policy on {website}.",
			Category: CategoryPrivacyPolicy,
		},
		{
			Question: "what is your typical project timeline",
			Response: "Project timelines vary depending on scope and complexity. After discussing your requirements, {company_name} will provide an estimated schedule and keep you updated throughout the process.",
			Category: CategoryTimeline,
		},
		{
			Question: "do you offer devops or cloud services",
			Response: "Yes! {company_name} provides DevOps consulting, CI/CD implementation, and cloud deployment services. We tailor solutions to meet your specific needs and infrastructure.",
			Category: CategoryCapabilities,
		},
		{
			Question: "how do you handle security",
			Response: "{company_name} employs best practices like SSL encryption, secure coding, and regular audits to protect your data. For more details, please visit {website}.",
			Category: CategorySecurity,
		},
		{
			Question: "do you provide training or workshops",
			Response: "Absolutely! {company_name} can conduct training sessions or workshops to help your team get up to speed on new technologies, frameworks, or AI tools.",
			Category: CategoryServices,
		},
		{
			Question: "do you have any client references or testimonials",
			Response: "We love to share success stories! You can find testimonials on {website}, or contact us to learn more about our past projects.",
			Category: CategoryTestimonials,
		},
		{
			Question: "how do you handle cancellations",
			Response: "If you need to cancel a project, please contact {company_name} as soon as possible. We'll review the work completed and discuss any applicable fees or refunds.",
			Category: CategoryRefundPolicy,
		},
	})
}
