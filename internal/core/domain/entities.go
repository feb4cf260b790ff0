package domain

// Role represents user role in the system
type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// IsAdmin reports whether the role carries admin privileges
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Status represents user account status
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
)

// Section identifies one independently cacheable unit of the landing page
type Section string

const (
	SectionHero         Section = "hero"
	SectionFeatures     Section = "features"
	SectionPartners     Section = "partners"
	SectionFAQ          Section = "faq"
	SectionTestimonials Section = "testimonials"
)

// Sections lists every landing page section in display order
var Sections = []Section{
	SectionHero,
	SectionFeatures,
	SectionPartners,
	SectionFAQ,
	SectionTestimonials,
}

// ParseSection validates a raw section value
func ParseSection(raw string) (Section, error) {
	for _, s := range Sections {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", ErrUnknownSection
}
