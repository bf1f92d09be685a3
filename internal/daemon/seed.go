package daemon

import (
	"gorm.io/gorm"

	"github.com/festa-familia/festa-admin/internal/config"
	"github.com/festa-familia/festa-admin/internal/db/models"
)

// defaultSiteContent is the initial site copy, written once when the
// settings table is empty so the public page never renders blank.
var defaultSiteContent = map[string]string{
	"heroTitle":            "Festa da Família",
	"heroSubtitle":         "Teixeira, Tavares & Faria",
	"heroDescription":      "Junte-se a nós para um dia inesquecível de alegria, memórias e muita comida boa!",
	"heroButton":           "Confirmar Presença",
	"countdownTitle":       "Falta Pouco!",
	"countdownDescription": "A contagem regressiva para o nosso grande dia já começou. Prepare-se!",
	"detailsTitle":         "Detalhes do Evento",
	"detailsDescription":   "Tudo o que você precisa saber para não perder nada.",
	"eventDate":            "18 de Outubro, 2025",
	"eventTime":            "A partir das 10:00h",
	"eventLocationName":    "Sítio Malícia",
	"locationTitle":        "Como Chegar",
	"locationAddress":      "Sítio Malícia - Pedra do Indaiá, Minas Gerais, 35565-000",
	"galleryTitle":         "Mural de Memórias",
	"galleryDescription":   "Relembre alguns dos nossos momentos mais especiais.",
	"rsvpTitle":            "Confirme Sua Presença",
	"rsvpDescription":      "Sua resposta é muito importante para nós. Por favor, confirme até 10 de Dezembro.",
	"footerText":           "Feito com ❤️ para a grande família Teixeira, Tavares & Faria.",
}

func seed(cfg *config.Config, db *gorm.DB) {
	// Seed the shared admin credential if the user table is empty.
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		password := cfg.Admin.Password
		if password == "" {
			password = "changeme"
		}

		db.Create(
			&models.User{
				Username: cfg.Admin.Username,
				Password: models.HashPassword(password),
				Active:   true,
			},
		)
	}

	// Seed the default site copy if no settings exist yet.
	var settingCount int64
	db.Model(&models.Setting{}).Count(&settingCount)
	if settingCount == 0 {
		for key, value := range defaultSiteContent {
			db.Create(&models.Setting{Key: key, Value: value})
		}
	}
}
