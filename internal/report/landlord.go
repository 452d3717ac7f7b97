package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openhousing/bldgreport/internal/model"
	"github.com/openhousing/bldgreport/internal/registry"
	"github.com/openhousing/bldgreport/pkg/socrata"
)

const maxPortfolio = 20

var nameCaser = cases.Title(language.AmericanEnglish)

// resolveLandlord builds the owner profile from the primary
// registration record plus its contact roster. Registration data
// arrives upper-cased; personal names are title-cased for display,
// corporate names are kept as filed.
func resolveLandlord(key model.ParcelKey, registrations, contacts, portfolio []socrata.Record, fallbackOwner string) model.LandlordProfile {
	var reg socrata.Record
	if len(registrations) > 0 {
		reg = registrations[0]
	}

	owner := firstContact(contacts, "owner", "head")
	agent := firstContact(contacts, "agent", "manag")

	corpName := reg.Str("corporationname")
	name := corpName
	ownerType := "corporation"
	if name == "" {
		ownerType = "individual"
		name = personName(reg.Str("ownerfirstname"), reg.Str("ownerlastname"))
	}
	name = firstOf(name, fallbackOwner, "Unknown")

	p := model.LandlordProfile{
		Name:                name,
		Type:                ownerType,
		RegistrationID:      reg.Str("registrationid"),
		RegistrationEndDate: reg.Str("registrationenddate"),
		ManagementCompany:   firstOf(agent.Str("corporationname"), reg.Str("managementagent")),
		AgentName:           personName(agent.Str("firstname"), agent.Str("lastname")),
		AgentAddress:        contactAddress(agent),
		OwnerAddress:        contactAddress(owner),
		PortfolioSize:       len(portfolio),
		Portfolio:           []model.PortfolioBuilding{},
	}

	for _, b := range portfolio {
		if b.Str("bbl") == key.Padded {
			continue
		}
		if len(p.Portfolio) >= maxPortfolio {
			break
		}
		p.Portfolio = append(p.Portfolio, model.PortfolioBuilding{
			BBL:     b.Str("bbl"),
			Address: strings.TrimSpace(b.Str("housenumber") + " " + b.Str("streetname")),
			Borough: registry.BoroughName(b.Str("borough")),
			Zipcode: b.Str("zip"),
		})
	}

	return p
}

// firstContact returns the first contact whose role text contains any
// of the given fragments, or a nil record when none match.
func firstContact(contacts []socrata.Record, fragments ...string) socrata.Record {
	for _, c := range contacts {
		role := strings.ToLower(c.Str("type"))
		for _, f := range fragments {
			if strings.Contains(role, f) {
				return c
			}
		}
	}
	return nil
}

func personName(first, last string) string {
	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return ""
	}
	return nameCaser.String(strings.ToLower(name))
}

func contactAddress(c socrata.Record) string {
	house := c.Str("businesshousenumber")
	if house == "" {
		return ""
	}
	return house + " " + c.Str("businessstreetname") + ", " + c.Str("businesscity")
}
