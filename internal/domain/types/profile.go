package types

// Profile describes how to connect to one device and interpret its data.
//
// The JSON field names are shared with other tools reading profiles.json
// and must not change.
type Profile struct {
	Name               string `json:"Name"`
	AddressHex         string `json:"AddressHex"`
	ServiceUUID        string `json:"ServiceUuid"`
	CharacteristicUUID string `json:"CharacteristicUuid"`
	ParserType         string `json:"ParserType"`
}

// Template carries the values applied to every profile created in a run.
type Template struct {
	ServiceUUID        string `yaml:"service_uuid"`
	CharacteristicUUID string `yaml:"characteristic_uuid"`
	ParserType         string `yaml:"parser_type"`
}

// NewProfile builds the profile skeleton for d. The name is the device's
// broadcast name; collision resolution happens when the profile is stored.
func (t Template) NewProfile(d DiscoveredDevice) Profile {
	return Profile{
		Name:               d.Name,
		AddressHex:         d.AddressHex(),
		ServiceUUID:        t.ServiceUUID,
		CharacteristicUUID: t.CharacteristicUUID,
		ParserType:         t.ParserType,
	}
}
