package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"regexp"
	"strings"

	"github.com/adetunji/coldreach/internal/entity"
	"github.com/adetunji/coldreach/internal/infra/database"
	"github.com/adetunji/coldreach/internal/infra/http/middleware"
	"github.com/adetunji/coldreach/internal/infra/mail"
)

// DiscoverLeadsUseCase walks the company list top to bottom, enriches each
// eligible company into a lead (founder name + email + rendered body) and
// stores it as READY. Every provider failure abandons the current company
// and moves on; nothing here is fatal to the run.
type DiscoverLeadsUseCase struct {
	LeadRepo LeadRepositoryInterface
	Searcher FounderSearcher
	Finder   EmailFinder

	// RandInt picks the template variant. Swappable so tests can pin it.
	RandInt func(n int) int
}

func NewDiscoverLeadsUseCase(
	leadRepo LeadRepositoryInterface,
	searcher FounderSearcher,
	finder EmailFinder,
) *DiscoverLeadsUseCase {
	return &DiscoverLeadsUseCase{
		LeadRepo: leadRepo,
		Searcher: searcher,
		Finder:   finder,
		RandInt:  rand.Intn,
	}
}

// Variants discovery picks between. opportunity_saw is reserved for the
// manual compose flow.
var discoveryVariants = []string{
	entity.EmailTypeLoveTheirWork,
	entity.EmailTypeWaysToAddToTeam,
}

func (uc *DiscoverLeadsUseCase) Execute(ctx context.Context, companies []entity.Company, limit int) (*DiscoverLeadsSummary, error) {
	summary := &DiscoverLeadsSummary{}

	for _, company := range companies {
		if summary.Processed >= limit {
			log.Printf("Reached limit of %d processed companies.", limit)
			break
		}

		log.Printf("--- Processing %s ---", company.Name)

		exists, err := uc.LeadRepo.ExistsByCompanyName(ctx, company.Name)
		if err != nil {
			return summary, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to check existing leads: " + err.Error(),
			}
		}
		if exists {
			log.Printf("Skipping %s: Already processed.", company.Name)
			summary.Skipped++
			middleware.RecordLeadDiscovered("skipped")
			continue
		}

		// Companies marked Inactive or Acquired are dead ends for outreach.
		// The predicate is literal on purpose: exact "Inactive", substring
		// "Acquired".
		if company.Status == "Inactive" || strings.Contains(company.Status, "Acquired") {
			log.Printf("Skipping %s: Status is %s", company.Name, company.Status)
			summary.Skipped++
			middleware.RecordLeadDiscovered("skipped")
			continue
		}

		summary.Processed++
		middleware.RecordLeadDiscovered("processed")

		founder, err := uc.Searcher.FindFounder(ctx, company.Website)
		if err != nil {
			log.Printf("Error searching for %s: %v", company.Name, err)
			middleware.RecordIntegrationError("serper")
			continue
		}
		if founder == nil || founder.Name == "" {
			log.Printf("No founder found for %s. Skipping.", company.Name)
			continue
		}
		log.Printf("Found potential founder: %s (%s)", founder.Name, founder.Link)

		domain := NormalizeDomain(company.Website)

		email, err := uc.Finder.FindEmail(ctx, founder.Name, domain)
		if err != nil {
			log.Printf("Error finding email for %s: %v", founder.Name, err)
			middleware.RecordIntegrationError("findymail")
			continue
		}
		if email == "" {
			log.Printf("No email found for %s. Skipping database entry.", founder.Name)
			continue
		}
		log.Printf("Found email: %s", email)

		selectedType := discoveryVariants[uc.RandInt(len(discoveryVariants))]
		log.Printf("Selected email type: %s", selectedType)

		firstName := strings.SplitN(founder.Name, " ", 2)[0]
		body := mail.RenderBody(selectedType, firstName, company.Name)

		lead := &entity.Lead{
			CompanyName:     company.Name,
			CompanyWebsite:  company.Website,
			FounderName:     founder.Name,
			FounderLinkedIn: founder.Link,
			FounderEmail:    email,
			EmailType:       selectedType,
			GeneratedBody:   body,
			Status:          entity.LeadStatusReady,
		}

		if err := uc.LeadRepo.Create(ctx, lead); err != nil {
			if errors.Is(err, database.ErrDuplicateCompany) {
				// Another run got there between our existence check and this
				// insert. The constraint did its job; nothing was written.
				log.Printf("Skipping %s: Already processed (concurrent insert).", company.Name)
				continue
			}
			log.Printf("Error saving lead for %s: %v", company.Name, err)
			continue
		}

		summary.Saved++
		middleware.RecordLeadDiscovered("saved")
		log.Printf("Saved lead for %s [%s]", company.Name, selectedType)
	}

	return summary, nil
}

var schemePrefix = regexp.MustCompile(`^https?://`)

// NormalizeDomain reduces a website URL to a bare domain: scheme and
// leading www. stripped, path cut off.
func NormalizeDomain(website string) string {
	domain := schemePrefix.ReplaceAllString(website, "")
	domain = strings.TrimPrefix(domain, "www.")
	if i := strings.Index(domain, "/"); i >= 0 {
		domain = domain[:i]
	}
	return domain
}
