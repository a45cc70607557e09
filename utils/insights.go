package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"truleadai/models"
)

// InsightGenerator produces human-readable sales guidance for a single lead.
// The pipeline treats the implementation as opaque; failures surface as
// ErrInsightFailed without touching lead data.
type InsightGenerator interface {
	Generate(ctx context.Context, lead models.Lead) (string, error)
}

// TemplateInsightGenerator expands a fixed set of contextual templates over
// the lead's firmographics. It stands in for a real AI service and never
// performs network calls.
type TemplateInsightGenerator struct {
	now func() time.Time
}

func NewTemplateInsightGenerator() *TemplateInsightGenerator {
	return &TemplateInsightGenerator{now: time.Now}
}

var industryInsights = map[string]string{
	"Technology":    "**Tech-Savvy Audience**: They understand technical solutions well. Lead with innovation, scalability, and technical specifications. Emphasize ROI and competitive advantages.",
	"Healthcare":    "**Compliance Focus**: Healthcare organizations prioritize security, compliance, and patient privacy. Highlight HIPAA compliance and data protection features.",
	"Finance":       "**Risk-Averse**: Financial institutions are cautious about new solutions. Emphasize security, regulatory compliance, and proven track record.",
	"Manufacturing": "**Operational Efficiency**: Focus on how your solution improves operational efficiency, reduces costs, or enhances production quality.",
	"Retail":        "**Customer Experience**: Retail companies care about customer experience and sales growth. Show how your solution improves customer satisfaction.",
}

var locationInsights = map[string]string{
	"United States":  "**US Market**: Direct communication style preferred. Focus on business outcomes, efficiency gains, and competitive positioning.",
	"United Kingdom": "**UK Market**: Professional yet personal approach works well. Emphasize partnership and long-term relationships.",
	"Germany":        "**German Market**: Detail-oriented and thorough evaluation process. Provide comprehensive technical documentation and specifications.",
	"Japan":          "**Japanese Market**: Relationship-building is crucial. Invest time in trust-building and demonstrate long-term commitment.",
}

// Generate builds guidance from company size, industry, revenue, location
// and company age, closing with tailored conversation starters.
func (t *TemplateInsightGenerator) Generate(ctx context.Context, lead models.Lead) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInsightFailed, err)
	}

	var insights []string

	switch {
	case strings.Contains(lead.EmployeeCount, "1-10"):
		insights = append(insights, "**Startup Approach**: This is a small startup. Focus on cost-effective solutions and quick implementation. Decision-making is likely centralized with the founder/CEO.")
	case strings.Contains(lead.EmployeeCount, "1000+"):
		insights = append(insights, "**Enterprise Strategy**: Large corporation with complex decision processes. Expect longer sales cycles but higher deal values. Consider multi-stakeholder approach.")
	}

	if insight, ok := industryInsights[lead.Industry]; ok {
		insights = append(insights, insight)
	}

	switch {
	case strings.Contains(lead.Revenue, "<$1M") || strings.Contains(lead.Revenue, "$1M-$10M"):
		insights = append(insights, "**Budget-Conscious**: Smaller revenue suggests budget constraints. Emphasize cost-effectiveness, quick ROI, and flexible pricing options.")
	case strings.Contains(lead.Revenue, "$100M+"):
		insights = append(insights, "**High-Value Target**: Large revenue company with substantial budget. Focus on comprehensive solutions and premium features.")
	}

	if insight, ok := locationInsights[lead.Location.Country]; ok {
		insights = append(insights, insight)
	}

	age := t.now().Year() - lead.Founded
	switch {
	case age < 5:
		insights = append(insights, "**Growth Phase**: Young company likely in growth mode. They may be more open to innovative solutions that can scale with their business.")
	case age > 20:
		insights = append(insights, "**Established Player**: Mature company with established processes. Focus on proven solutions and smooth integration with existing systems.")
	}

	starters := []string{
		fmt.Sprintf(`"I noticed %s has been expanding in the %s sector. We've helped similar companies in %s achieve..."`, lead.Company, strings.ToLower(lead.Industry), lead.Location.City),
		fmt.Sprintf(`"Given %s's focus on %s, I thought you might be interested in how we've helped companies of your size..."`, lead.Company, strings.ToLower(lead.Industry)),
		fmt.Sprintf(`"I saw that %s was founded in %d. Companies at your stage often face challenges with..."`, lead.Company, lead.Founded),
	}
	insights = append(insights, "**Conversation Starters**:\n"+strings.Join(starters, "\n\n"))

	return strings.Join(insights, "\n\n"), nil
}
