package handlers

import (
	"io"
	"strings"
	"time"

	"sreedamodar/models"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// In-memory repository stubs used across the handler tests.

type stubConsignmentRepo struct {
	items  []*models.Consignment
	nextID int64
	err    error
}

func (s *stubConsignmentRepo) CreateConsignment(c *models.Consignment) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	c.ID = s.nextID
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Recompute()
	cp := *c
	s.items = append(s.items, &cp)
	return nil
}

func (s *stubConsignmentRepo) GetConsignments(filters map[string]interface{}, single bool) ([]*models.Consignment, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*models.Consignment
	for _, c := range s.items {
		if id, ok := filters["id"]; ok {
			switch v := id.(type) {
			case int:
				if c.ID != int64(v) {
					continue
				}
			case int64:
				if c.ID != v {
					continue
				}
			}
		}
		if company, ok := filters["company"]; ok && c.Company != company {
			continue
		}
		out = append(out, c)
	}
	if single {
		if len(out) == 0 {
			return nil, nil
		}
		return out[:1], nil
	}
	return out, nil
}

func (s *stubConsignmentRepo) UpdateConsignment(c *models.Consignment) error {
	if s.err != nil {
		return s.err
	}
	c.Recompute()
	for i, existing := range s.items {
		if existing.ID == c.ID {
			cp := *c
			s.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (s *stubConsignmentRepo) DeleteConsignment(id int64) error {
	for i, c := range s.items {
		if c.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubConsignmentRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	for _, c := range s.items {
		if c.ID == id {
			c.PdfPath = &path
			c.PdfCreatedAt = &createdAt
		}
	}
	return nil
}

type stubProfileRepo struct {
	profiles map[string]*models.CompanyProfile
}

func newStubProfileRepo() *stubProfileRepo {
	s := &stubProfileRepo{profiles: map[string]*models.CompanyProfile{}}
	for _, p := range models.DefaultProfiles() {
		s.profiles[p.Code] = p
	}
	return s
}

func (s *stubProfileRepo) SaveProfile(p *models.CompanyProfile) error {
	s.profiles[p.Code] = p
	return nil
}

func (s *stubProfileRepo) GetProfiles() ([]*models.CompanyProfile, error) {
	var out []*models.CompanyProfile
	for _, p := range s.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProfileRepo) GetProfileByCode(code string) (*models.CompanyProfile, error) {
	return s.profiles[code], nil
}

type stubEnquiryRepo struct {
	items  []*models.FutureBooking
	nextID int64
}

func (s *stubEnquiryRepo) CreateEnquiry(fb *models.FutureBooking) error {
	s.nextID++
	fb.ID = s.nextID
	if fb.Status == "" {
		fb.Status = models.EnquiryPending
	}
	cp := *fb
	s.items = append(s.items, &cp)
	return nil
}

func (s *stubEnquiryRepo) GetEnquiries(filters map[string]interface{}, single bool) ([]*models.FutureBooking, error) {
	var out []*models.FutureBooking
	for _, fb := range s.items {
		if id, ok := filters["id"]; ok {
			switch v := id.(type) {
			case int:
				if fb.ID != int64(v) {
					continue
				}
			case int64:
				if fb.ID != v {
					continue
				}
			}
		}
		out = append(out, fb)
	}
	if single {
		if len(out) == 0 {
			return nil, nil
		}
		return out[:1], nil
	}
	return out, nil
}

func (s *stubEnquiryRepo) UpdateEnquiryStatus(id int64, status string) error {
	for _, fb := range s.items {
		if fb.ID == id {
			fb.Status = status
		}
	}
	return nil
}

func (s *stubEnquiryRepo) DeleteEnquiry(id int64) error {
	for i, fb := range s.items {
		if fb.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return nil
}
