package view

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The dealer detail endpoint nests contact data deep inside a locator
// structure. Only the path down to the primary contact is typed; everything
// else in the document is ignored.

type textValue struct {
	Value string `json:"value"`
}

type telephoneCommunication struct {
	ChannelCode    textValue `json:"channelCode"`
	CompleteNumber textValue `json:"completeNumber"`
}

type postalAddress struct {
	LineOne  textValue `json:"lineOne"`
	CityName textValue `json:"cityName"`
	Region   textValue `json:"stateOrProvinceCountrySubDivisionID"`
	Postcode textValue `json:"postcode"`
}

type primaryContact struct {
	TelephoneCommunication []telephoneCommunication `json:"telephoneCommunication"`
	PostalAddress          *postalAddress           `json:"postalAddress"`
}

type dealerDocument struct {
	ShowDealerLocatorDataArea struct {
		DealerLocator []struct {
			DealerLocatorDetail []struct {
				DealerParty struct {
					SpecifiedOrganization struct {
						PrimaryContact []primaryContact `json:"primaryContact"`
					} `json:"specifiedOrganization"`
				} `json:"dealerParty"`
			} `json:"dealerLocatorDetail"`
		} `json:"dealerLocator"`
	} `json:"showDealerLocatorDataArea"`
}

// dealerPhone extracts the first phone number from a dealer document.
// Ten-digit numbers are reformatted as (AAA)-BBB-CCCC; anything else is
// returned as-is. A missing or malformed document yields an empty string.
func dealerPhone(doc json.RawMessage) string {
	for _, contact := range dealerContacts(doc) {
		for _, tel := range contact.TelephoneCommunication {
			if tel.ChannelCode.Value != "Phone" {
				continue
			}
			number := tel.CompleteNumber.Value
			if len(number) == 10 {
				return fmt.Sprintf("(%s)-%s-%s", number[:3], number[3:6], number[6:])
			}
			return number
		}
	}
	return ""
}

// dealerAddress extracts the first postal address from a dealer document as a
// space-joined street/city/region/postcode string, or empty when absent.
func dealerAddress(doc json.RawMessage) string {
	for _, contact := range dealerContacts(doc) {
		postal := contact.PostalAddress
		if postal == nil {
			continue
		}
		parts := []string{
			postal.LineOne.Value,
			postal.CityName.Value,
			postal.Region.Value,
			postal.Postcode.Value,
		}
		return strings.Join(parts, " ")
	}
	return ""
}

func dealerContacts(doc json.RawMessage) []primaryContact {
	if len(doc) == 0 {
		return nil
	}
	var parsed dealerDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil
	}
	var contacts []primaryContact
	for _, locator := range parsed.ShowDealerLocatorDataArea.DealerLocator {
		for _, detail := range locator.DealerLocatorDetail {
			contacts = append(contacts, detail.DealerParty.SpecifiedOrganization.PrimaryContact...)
		}
	}
	return contacts
}
