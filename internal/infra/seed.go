package infra

import (
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"keliauk/internal/models/db_models"
	"keliauk/pkg/utils"
)

// SeedCatalog loads the reference data (attractions, races, friends, the
// demo account) on first start. The catalog is read-only at runtime; seeding
// is skipped once rows exist.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Attraction{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding catalog data")

	attractions := []db_models.Attraction{
		{
			Name:        "Gedimino pilies bokštas",
			Description: "Vilniaus simbolis ant Pilies kalno, su apžvalgos aikštele į senamiestį.",
			Image:       "/static/attractions/gedimino-bokstas.jpg",
			Latitude:    54.6867,
			Longitude:   25.2904,
			Address:     "Arsenalo g. 5, Vilnius",
			Rating:      4.7,
			Category:    "Istorija",
		},
		{
			Name:        "Trakų pilis",
			Description: "Salos pilis Galvės ežere, vienintelė vandens pilis Rytų Europoje.",
			Image:       "/static/attractions/traku-pilis.jpg",
			Latitude:    54.6525,
			Longitude:   24.9342,
			Address:     "Karaimų g. 43C, Trakai",
			Rating:      4.8,
			Category:    "Istorija",
		},
		{
			Name:        "Kryžių kalnas",
			Description: "Piligrimystės vieta netoli Šiaulių su daugiau nei šimtu tūkstančių kryžių.",
			Image:       "/static/attractions/kryziu-kalnas.jpg",
			Latitude:    56.0153,
			Longitude:   23.4167,
			Address:     "Jurgaičiai, Šiaulių r.",
			Rating:      4.6,
			Category:    "Kultūra",
		},
		{
			Name:        "Aukštumalos pažintinis takas",
			Description: "Medinis takas per Aukštumalos aukštapelkę Nemuno deltos regioniniame parke.",
			Image:       "/static/attractions/aukstumala.jpg",
			Latitude:    55.4036,
			Longitude:   21.3786,
			Address:     "Šilutės r.",
			Rating:      4.4,
			Category:    "Gamta",
		},
		{
			Name:        "Parnidžio kopa",
			Description: "Smėlio kopa Nidoje su saulės laikrodžiu ir vaizdu į Kuršių marias.",
			Image:       "/static/attractions/parnidzio-kopa.jpg",
			Latitude:    55.2928,
			Longitude:   21.0069,
			Address:     "Nida, Neringa",
			Rating:      4.9,
			Category:    "Gamta",
		},
		{
			Name:        "Devintas fortas",
			Description: "Kauno tvirtovės fortas, muziejus ir memorialas.",
			Image:       "/static/attractions/devintas-fortas.jpg",
			Latitude:    54.9433,
			Longitude:   23.8383,
			Address:     "Žemaičių pl. 73, Kaunas",
			Rating:      4.5,
			Category:    "Istorija",
		},
	}
	// Explicit increasing timestamps keep the catalog order stable; the
	// fortune formula indexes into the list by position.
	base := time.Now().Unix()
	for i := range attractions {
		attractions[i].CreatedAt = base + int64(i)
	}
	if err := db.Create(&attractions).Error; err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword("test123")
	if err != nil {
		return err
	}
	account := db_models.Account{
		Name:         "Jonas Petraitis",
		Email:        "jonas@example.com",
		Avatar:       "https://ui-avatars.com/api/?name=Jonas+Petraitis&background=0D8ABC&color=fff",
		PasswordHash: passwordHash,
	}
	if err := db.Create(&account).Error; err != nil {
		return err
	}

	friends := []db_models.Friend{
		{
			Name:   "Marius Kazlauskas",
			Avatar: "https://ui-avatars.com/api/?name=Marius+Kazlauskas&background=4CAF50&color=fff",
			Status: "online",
		},
		{
			Name:   "Laura Petraitytė",
			Avatar: "https://ui-avatars.com/api/?name=Laura+Petraitytė&background=E91E63&color=fff",
			Status: "offline",
		},
		{
			Name:   "Tomas Jonaitis",
			Avatar: "https://ui-avatars.com/api/?name=Tomas+Jonaitis&background=FF9800&color=fff",
			Status: "online",
		},
	}
	if err := db.Create(&friends).Error; err != nil {
		return err
	}

	races := []db_models.Race{
		{
			Name:            "Vilniaus maratonas",
			Description:     "Didžiausias bėgimo renginys Lietuvoje, vykstantis Vilniaus senamiestyje ir apylinkėse.",
			Image:           "/static/races/vilniaus-maratonas.jpg",
			Date:            time.Date(2026, 9, 13, 9, 0, 0, 0, time.UTC),
			LocationName:    "Vilnius, Katedros aikštė",
			Latitude:        54.6872,
			Longitude:       25.2797,
			DistanceKm:      42.2,
			Participants:    pq.StringArray{account.ID.String()},
			MaxParticipants: 5000,
		},
		{
			Name:            "Trakų pusmaratonis",
			Description:     "Bėgimo renginys istoriniame Trakų mieste, aplink Galvės ežerą.",
			Image:           "/static/races/traku-pusmaratonis.jpg",
			Date:            time.Date(2026, 6, 7, 11, 0, 0, 0, time.UTC),
			LocationName:    "Trakai, Pilies sala",
			Latitude:        54.6458,
			Longitude:       24.9335,
			DistanceKm:      21.1,
			Participants:    pq.StringArray{},
			MaxParticipants: 2000,
		},
		{
			Name:            "Palangos pajūrio bėgimas",
			Description:     "Bėgimas Baltijos jūros pakrante, vienas gražiausių bėgimo maršrutų Lietuvoje.",
			Image:           "/static/races/palangos-begimas.jpg",
			Date:            time.Date(2026, 7, 25, 10, 0, 0, 0, time.UTC),
			LocationName:    "Palanga, Jūros tiltas",
			Latitude:        55.9175,
			Longitude:       21.0686,
			DistanceKm:      10,
			Participants:    pq.StringArray{},
			MaxParticipants: 1000,
		},
	}
	return db.Create(&races).Error
}
