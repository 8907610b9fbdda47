package views

import "github.com/shenikar/drought_response_system/internal/models"

type NavLink struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

var navigation = []struct {
	link  NavLink
	roles []models.Role
}{
	{NavLink{"/dashboard", "Dashboard"}, []models.Role{models.RoleGovernment, models.RoleNGO, models.RoleDistrictOfficer}},
	{NavLink{"/villages", "Villages"}, []models.Role{models.RoleGovernment, models.RoleNGO, models.RoleDistrictOfficer}},
	{NavLink{"/water", "Water Resources"}, []models.Role{models.RoleGovernment, models.RoleDistrictOfficer}},
	{NavLink{"/livestock", "Livestock"}, []models.Role{models.RoleGovernment, models.RoleDistrictOfficer}},
	{NavLink{"/ngos", "NGO Activities"}, []models.Role{models.RoleGovernment, models.RoleNGO}},
	{NavLink{"/coverage", "Coverage Map"}, []models.Role{models.RoleGovernment, models.RoleNGO}},
	{NavLink{"/alerts", "Alerts"}, []models.Role{models.RoleGovernment, models.RoleDistrictOfficer}},
	{NavLink{"/settings", "Settings"}, []models.Role{models.RoleGovernment, models.RoleNGO, models.RoleDistrictOfficer}},
}

// NavigationFor возвращает разделы, видимые роли. Пустая роль видит все
func NavigationFor(role models.Role) []NavLink {
	links := make([]NavLink, 0, len(navigation))
	for _, item := range navigation {
		if role == "" {
			links = append(links, item.link)
			continue
		}
		for _, r := range item.roles {
			if r == role {
				links = append(links, item.link)
				break
			}
		}
	}
	return links
}
