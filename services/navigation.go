// Package services: services/navigation.go
package services

import (
	"stream-music-portal/models"
)

// ------------------ capabilities ------------------

// Capability is the access requirement attached to a page. Gating lives in
// one table instead of per-page role checks.
type Capability string

const (
	CapabilityNone  Capability = "none"
	CapabilityAdmin Capability = "admin"
)

// ------------------ page registry ------------------

// DefaultPage is where every resolved navigation falls back to.
const DefaultPage = "dashboard"

// PageInfo describes one entry of the fixed page set.
type PageInfo struct {
	Name       string
	Title      string
	Capability Capability
}

// pageOrder fixes the sidebar ordering.
var pageOrder = []string{
	"dashboard", "upload", "catalog", "royalties", "analytics",
	"artists", "labels", "support", "settings", "admin",
}

var pages = map[string]PageInfo{
	"dashboard": {Name: "dashboard", Title: "Dashboard", Capability: CapabilityNone},
	"upload":    {Name: "upload", Title: "Novo Lançamento", Capability: CapabilityNone},
	"catalog":   {Name: "catalog", Title: "Meu Catálogo", Capability: CapabilityNone},
	"royalties": {Name: "royalties", Title: "Financeiro", Capability: CapabilityNone},
	"analytics": {Name: "analytics", Title: "Relatórios", Capability: CapabilityNone},
	"artists":   {Name: "artists", Title: "Perfil Artista", Capability: CapabilityNone},
	"labels":    {Name: "labels", Title: "Editoras", Capability: CapabilityNone},
	"support":   {Name: "support", Title: "Suporte Técnico", Capability: CapabilityNone},
	"settings":  {Name: "settings", Title: "Definições", Capability: CapabilityNone},
	"admin":     {Name: "admin", Title: "Painel Master", Capability: CapabilityAdmin},
}

// ResolvePage is the single navigation transition. Unknown pages and pages
// the role lacks the capability for resolve to the default page. The guard
// runs on every transition attempt, not only at first render.
func ResolvePage(page string, role models.Role) string {
	info, ok := pages[page]
	if !ok {
		return DefaultPage
	}
	if info.Capability == CapabilityAdmin && role != models.RoleAdmin {
		return DefaultPage
	}
	return info.Name
}

// PageTitle returns the shell title for a page, falling back to the product
// name for anything unknown.
func PageTitle(page string) string {
	if info, ok := pages[page]; ok {
		return info.Title
	}
	return "Stream Music"
}

// NavigationItems lists the sidebar entries the given role may open, in
// fixed order.
func NavigationItems(role models.Role) []PageInfo {
	var out []PageInfo
	for _, name := range pageOrder {
		info := pages[name]
		if info.Capability == CapabilityAdmin && role != models.RoleAdmin {
			continue
		}
		out = append(out, info)
	}
	return out
}

// AudienceForPage maps the active page to the notification audience its
// inbox shows: the master panel reads admin items, everything else artist
// items.
func AudienceForPage(page string) models.Audience {
	if page == "admin" {
		return models.AudienceAdmin
	}
	return models.AudienceArtist
}
