// Package services: services/seed.go
//
// In-memory fixtures the portal boots with. There is no persistence; a
// restart returns to exactly this state.
package services

import (
	"time"

	"stream-music-portal/models"
)

// SeedReleases returns the initial catalog.
func SeedReleases() []models.Release {
	return []models.Release{
		{
			ID:          "1",
			Title:       "Minha Banda",
			Artist:      "Gerilson Insra",
			Cover:       "https://images.unsplash.com/photo-1614613535308-eb5fbd3d2c17?auto=format&fit=crop&q=80&w=400",
			Type:        models.TypeSingle,
			Status:      models.StatusDistributed,
			ReleaseDate: "2024-05-12",
			UPC:         "123456789012",
			Genre:       "Kizomba",
			Platforms:   []string{"Spotify", "Apple", "Boomplay", "Audiomack"},
			Revenue:     4500.00,
		},
		{
			ID:          "2",
			Title:       "Semba de Angola",
			Artist:      "Puto Português",
			Cover:       "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?auto=format&fit=crop&q=80&w=400",
			Type:        models.TypeAlbum,
			Status:      models.StatusInReview,
			ReleaseDate: "2024-06-15",
			UPC:         "098765432109",
			Genre:       "Semba",
			Platforms:   []string{"Spotify", "YouTube Music", "Audiomack"},
			Revenue:     0,
		},
		{
			ID:          "3",
			Title:       "Amapiano Vibe",
			Artist:      "Scró Q Cuia",
			Cover:       "https://images.unsplash.com/photo-1493225255756-d9584f8606e9?auto=format&fit=crop&q=80&w=400",
			Type:        models.TypeEP,
			Status:      models.StatusRejected,
			ReleaseDate: "2024-08-01",
			UPC:         "556677889900",
			Genre:       "Amapiano",
			Platforms:   []string{"Spotify", "Apple", "Tidal"},
			Revenue:     0,
		},
	}
}

// SeedPayouts returns the initial payout requests.
func SeedPayouts() []models.PayoutRequest {
	return []models.PayoutRequest{
		{ID: "P-101", Artist: "Gerilson Insra", Amount: 1200.50, Method: "IBAN Angola", Date: "2024-08-02", Status: models.PayoutPending},
		{ID: "P-102", Artist: "Scró Q Cuia", Amount: 850.00, Method: "PayPal", Date: "2024-08-01", Status: models.PayoutCompleted},
		{ID: "P-103", Artist: "Puto Português", Amount: 3100.20, Method: "IBAN Portugal", Date: "2024-07-28", Status: models.PayoutPending},
	}
}

// SeedTickets returns the initial support queue.
func SeedTickets() []models.Ticket {
	return []models.Ticket{
		{ID: "T-1001", Subject: "Problema no pagamento de royalties (Junho)", Status: models.TicketInProgress, Date: "2024-07-28", Priority: models.PriorityHigh, User: "Gerilson Insra"},
		{ID: "T-1002", Subject: "Alteração de nome artístico", Status: models.TicketOpen, Date: "2024-07-30", Priority: models.PriorityMedium, User: "Puto Português"},
		{ID: "T-1003", Subject: "Verificação de perfil no Spotify", Status: models.TicketResolved, Date: "2024-07-25", Priority: models.PriorityLow, User: "Gerilson Insra"},
	}
}

// SeedNotifications returns the welcome note every fresh session sees.
func SeedNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:        "1",
			Title:     "Boas-vindas",
			Message:   "Bem-vindo à Stream Music Distribution!",
			Audience:  models.AudienceArtist,
			Read:      false,
			CreatedAt: time.Now(),
		},
	}
}

// SeedArtists returns the roster shown on the artist profile and admin CRM
// views.
func SeedArtists() []models.Artist {
	return []models.Artist{
		{
			ID: "1", Name: "Gerilson Insra", LegalName: "Gerilson Carvalho",
			Photo: "https://picsum.photos/seed/gerilson/400/400", Country: "Angola",
			Phone: "+244 923 000 000", Email: "gerilson@music.ao",
			Facebook: "gerilsoninsra.oficial", Instagram: "@gerilson_insra",
			Streams: "15.2M", MonthlyListeners: "850K", ReleasesCount: 24,
		},
		{
			ID: "2", Name: "Scró Q Cuia", LegalName: "Scró Carvalho",
			Photo: "https://picsum.photos/seed/scro/400/400", Country: "Angola",
			Phone: "+244 923 111 222", Email: "scro@music.ao",
			Streams: "8.4M", MonthlyListeners: "420K", ReleasesCount: 12,
		},
	}
}
