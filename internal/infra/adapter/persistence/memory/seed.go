package memory

import (
	"time"

	"lawportal/internal/domain/entity"
)

// seed populates the store with the site's initial content. Seeding is
// a construction-time side effect only; it bypasses the public create
// operations so the counters still end up consistent with the highest
// assigned IDs.
func (s *Store) seed() {
	categories := []entity.Category{
		{
			Name:        "Labor Law",
			Slug:        "labor-law",
			Description: strPtr("Employment contracts, dismissals and workplace rights."),
			IconName:    strPtr("briefcase"),
		},
		{
			Name:        "Family Law",
			Slug:        "family-law",
			Description: strPtr("Divorce, custody, alimony and family property."),
			IconName:    strPtr("users"),
		},
		{
			Name:        "Consumer Rights",
			Slug:        "consumer-rights",
			Description: strPtr("Defective products, refunds and abusive contract terms."),
			IconName:    strPtr("shield"),
		},
		{
			Name:        "Tax Law",
			Slug:        "tax-law",
			Description: strPtr("Income tax, audits and administrative appeals."),
			IconName:    strPtr("calculator"),
		},
	}
	for i := range categories {
		s.categoryID++
		categories[i].ID = s.categoryID
		s.categories[categories[i].ID] = categories[i]
	}

	articles := []entity.Article{
		{
			Title:       "What to Do After an Unfair Dismissal",
			Slug:        "unfair-dismissal-first-steps",
			Excerpt:     "The deadlines and documents that matter in the first weeks after losing your job.",
			Content:     "Being dismissed without cause does not end your rights. Start by requesting the dismissal letter in writing...",
			PublishDate: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			CategoryID:  1,
			Featured:    int64Ptr(1),
		},
		{
			Title:       "Child Custody: How Courts Decide",
			Slug:        "child-custody-how-courts-decide",
			Excerpt:     "The best-interest standard explained with practical examples.",
			Content:     "Custody decisions weigh stability, the child's routine and each parent's availability...",
			PublishDate: time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC),
			CategoryID:  2,
			Featured:    int64Ptr(0),
		},
		{
			Title:       "Returning a Defective Product",
			Slug:        "returning-a-defective-product",
			Excerpt:     "Your warranty rights and how to escalate when the seller refuses.",
			Content:     "Consumer protection statutes give you a repair-replace-refund ladder...",
			PublishDate: time.Date(2025, 7, 8, 9, 0, 0, 0, time.UTC),
			CategoryID:  3,
			Featured:    int64Ptr(1),
		},
		{
			Title:       "Overtime Pay: Know Your Numbers",
			Slug:        "overtime-pay-know-your-numbers",
			Excerpt:     "How overtime premiums are calculated and what records to keep.",
			Content:     "Keep your own log of hours worked. Employers must pay premiums for hours beyond the legal week...",
			PublishDate: time.Date(2025, 7, 25, 9, 0, 0, 0, time.UTC),
			CategoryID:  1,
		},
		{
			Title:       "Preparing for a Tax Audit",
			Slug:        "preparing-for-a-tax-audit",
			Excerpt:     "What auditors look for and which documents to have ready.",
			Content:     "An audit notice sets a response window. Gather invoices, bank statements and prior filings...",
			PublishDate: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC),
			CategoryID:  4,
			Featured:    int64Ptr(1),
		},
	}
	for i := range articles {
		s.articleID++
		articles[i].ID = s.articleID
		s.articles[articles[i].ID] = articles[i]
	}

	solutions := []entity.Solution{
		{
			Title:       "Document Review",
			Description: "Send us a contract or notice and receive a written assessment within two business days.",
			Link:        "/services/document-review",
			LinkText:    "Request a review",
		},
		{
			Title:       "Initial Consultation",
			Description: "A 30-minute call with a lawyer to map out your options before you commit to anything.",
			Link:        "/services/consultation",
			LinkText:    "Book a consultation",
		},
		{
			Title:       "Court Representation",
			Description: "Full representation before labor, family and civil courts.",
			Link:        "/services/representation",
			LinkText:    "Talk to us",
		},
	}
	for i := range solutions {
		s.solutionID++
		solutions[i].ID = s.solutionID
		s.solutions[solutions[i].ID] = solutions[i]
	}
}

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }
