package entities

// Wilaya is one of the 58 Algerian administrative regions. Trips and
// parcel requests reference wilayas by zero-padded code.
type Wilaya struct {
	Code string
	Name string
}

// Wilayas lists all 58 wilayas in official numbering order, including the
// ten created in the 2019 reorganization (codes 49..58).
var Wilayas = []Wilaya{
	{Code: "01", Name: "Adrar"},
	{Code: "02", Name: "Chlef"},
	{Code: "03", Name: "Laghouat"},
	{Code: "04", Name: "Oum El Bouaghi"},
	{Code: "05", Name: "Batna"},
	{Code: "06", Name: "Béjaïa"},
	{Code: "07", Name: "Biskra"},
	{Code: "08", Name: "Béchar"},
	{Code: "09", Name: "Blida"},
	{Code: "10", Name: "Bouira"},
	{Code: "11", Name: "Tamanrasset"},
	{Code: "12", Name: "Tébessa"},
	{Code: "13", Name: "Tlemcen"},
	{Code: "14", Name: "Tiaret"},
	{Code: "15", Name: "Tizi Ouzou"},
	{Code: "16", Name: "Alger"},
	{Code: "17", Name: "Djelfa"},
	{Code: "18", Name: "Jijel"},
	{Code: "19", Name: "Sétif"},
	{Code: "20", Name: "Saïda"},
	{Code: "21", Name: "Skikda"},
	{Code: "22", Name: "Sidi Bel Abbès"},
	{Code: "23", Name: "Annaba"},
	{Code: "24", Name: "Guelma"},
	{Code: "25", Name: "Constantine"},
	{Code: "26", Name: "Médéa"},
	{Code: "27", Name: "Mostaganem"},
	{Code: "28", Name: "M'Sila"},
	{Code: "29", Name: "Mascara"},
	{Code: "30", Name: "Ouargla"},
	{Code: "31", Name: "Oran"},
	{Code: "32", Name: "El Bayadh"},
	{Code: "33", Name: "Illizi"},
	{Code: "34", Name: "Bordj Bou Arréridj"},
	{Code: "35", Name: "Boumerdès"},
	{Code: "36", Name: "El Tarf"},
	{Code: "37", Name: "Tindouf"},
	{Code: "38", Name: "Tissemsilt"},
	{Code: "39", Name: "El Oued"},
	{Code: "40", Name: "Khenchela"},
	{Code: "41", Name: "Souk Ahras"},
	{Code: "42", Name: "Tipaza"},
	{Code: "43", Name: "Mila"},
	{Code: "44", Name: "Aïn Defla"},
	{Code: "45", Name: "Naâma"},
	{Code: "46", Name: "Aïn Témouchent"},
	{Code: "47", Name: "Ghardaïa"},
	{Code: "48", Name: "Relizane"},
	{Code: "49", Name: "Timimoun"},
	{Code: "50", Name: "Bordj Badji Mokhtar"},
	{Code: "51", Name: "Ouled Djellal"},
	{Code: "52", Name: "Béni Abbès"},
	{Code: "53", Name: "In Salah"},
	{Code: "54", Name: "In Guezzam"},
	{Code: "55", Name: "Touggourt"},
	{Code: "56", Name: "Djanet"},
	{Code: "57", Name: "El M'Ghair"},
	{Code: "58", Name: "El Meniaa"},
}

var wilayasByCode = func() map[string]Wilaya {
	m := make(map[string]Wilaya, len(Wilayas))
	for _, w := range Wilayas {
		m[w.Code] = w
	}
	return m
}()

// WilayaByCode looks a wilaya up by its zero-padded code.
func WilayaByCode(code string) (Wilaya, bool) {
	w, ok := wilayasByCode[code]
	return w, ok
}

func IsValidWilayaCode(code string) bool {
	_, ok := wilayasByCode[code]
	return ok
}
