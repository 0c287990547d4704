package matching

import "strings"

// Session categories produced by RouteCategory.
const (
	CategoryDigitalMarketing  = "DigitalMarketing"
	CategoryContentMarketing  = "ContentMarketing"
	CategorySocialMedia       = "SocialMedia"
	CategoryWebDevelopment    = "WebDevelopment"
	CategoryDataScience       = "DataScience"
	CategoryProductManagement = "ProductManagement"
	CategoryDevOps            = "DevOps"
	CategorySales             = "Sales"
	CategoryFinance           = "Finance"
	CategoryGeneral           = "General"
)

// RouteCategory maps an industry and focus tags onto one coarse session category.
// The result is only a retrieval hint; sessions outside it can still be recommended.
func RouteCategory(industry string, focus []string) string {
	lowered := make([]string, len(focus))
	for i, f := range focus {
		lowered[i] = strings.ToLower(f)
	}
	anyContains := func(needles ...string) bool {
		for _, f := range lowered {
			for _, n := range needles {
				if strings.Contains(f, n) {
					return true
				}
			}
		}
		return false
	}

	switch strings.ToLower(industry) {
	case "marketing":
		switch {
		case anyContains("digital"):
			return CategoryDigitalMarketing
		case anyContains("content"):
			return CategoryContentMarketing
		case anyContains("social"):
			return CategorySocialMedia
		default:
			// "seo" also lands here.
			return CategoryDigitalMarketing
		}
	case "technology", "tech":
		switch {
		case anyContains("software", "development"):
			return CategoryWebDevelopment
		case anyContains("data"):
			return CategoryDataScience
		case anyContains("product"):
			return CategoryProductManagement
		case anyContains("devops"):
			return CategoryDevOps
		default:
			return CategoryWebDevelopment
		}
	case "sales":
		return CategorySales
	case "finance":
		return CategoryFinance
	}
	return CategoryGeneral
}
