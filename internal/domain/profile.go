package domain

// ProfileRole defines the type of family member
type ProfileRole string

const (
	RoleParent    ProfileRole = "parent"
	RoleChild     ProfileRole = "child"
	RoleCaregiver ProfileRole = "caregiver"
)

// Color palette tokens used for per-member display colors
const (
	ColorBlue    = "family-blue"
	ColorGreen   = "family-green"
	ColorPurple  = "family-purple"
	ColorOrange  = "family-orange"
	ColorPink    = "family-pink"
	ColorTeal    = "family-teal"
	ColorDefault = ColorBlue
)

// Profile represents a family member
type Profile struct {
	ID     string
	Name   string
	Avatar string // short glyph or initials, e.g. "👧"
	Color  string // palette token, e.g. ColorPurple
	Role   ProfileRole
}

// IsParent returns true for members with parental permissions
func (p *Profile) IsParent() bool {
	return p.Role == RoleParent
}
