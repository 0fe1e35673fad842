package config

// Per-language risk keyword strings, OR-ed into every search query. Kept in
// code for now; could move to a table the day languages are added at runtime.

const norwegianSearchString = `Hvitvasking OR Heleri OR Tyveri OR Underslag OR Ran OR Utpressing OR Bedrageri OR Skattesvik OR Korrupsjon OR "Økonomisk utroskap" OR Terrorfinansiering OR Arbeidslivskriminalitet OR Konkurskriminalitet OR Miljøkriminalitet OR Regnskapskriminalitet OR Verdipapirkriminalitet OR Fakturasvindel OR Investeringsbedrageri OR Direktørbedrageri OR Olga-svindel OR Akvakulturkriminalitet OR "2Svart arbeid" OR "Økonomisk kriminalitet" OR Pengemuldyr OR Narkotika OR Smugling OR Kokain OR Heroin OR Skatteparadis OR Afghanistan OR Barbados OR Burkina OR Faso OR Caymanøyene OR Haiti OR Filippinene OR Iran OR Jamaica OR Jemen OR Jordan OR Kambodsja OR Mali OR Marokko OR Myanmar OR Nicaragua OR Nord-Korea OR Pakistan OR Panama OR Senegal OR Syria OR Sør-Sudan OR "Trinidad og Tobago" OR Uganda OR Vanuatu OR Zimbabwe OR Albania OR Forente OR Arabiske OR Emirater OR Malta OR Tyrkia OR Yemen OR Grønnvasking OR Faunakriminalitet OR Menneskesmugling OR Anmeldt OR Ulovlig OR Kriminell OR Lønnstyveri OR Hasj OR Marihuana OR Ekstremist OR Radikal OR Overgrep OR Forsikringssvindel OR Terrorist OR Militant OR Sedelighet OR Innsidehandel OR arrestert OR krypto OR kryptovaluta OR "virtuell valuta" OR bitcoin OR ethereum`

const swedishSearchString = `Penningtvätt OR Häleri OR Stöld OR tjuveri OR Förskingring OR Rån OR Utpressning OR Bedrägeri OR Skattebrott OR Korruption OR terroristfinansiering OR konkursbrott OR Miljöbrott OR Bokföringsbrott OR Finansmarknadsbrott OR Fakturabedrägeri OR fordringsbedrägeri OR Investeringsbedrägeri OR VD-bedrägeri OR "Olga bedrägeri" OR Svartarbete OR "Ekonomisk brottslighet" OR ekobrott OR bulvan OR Narkotika OR Smuggling OR Kokain OR Heroin OR Skatteparadis OR Afghanistan OR Barbados OR "Burkina Faso" OR Caymanöarna OR Kajmanöarna OR Haiti OR Filippinerna OR Iran OR Jamaica OR Jemen OR Jordanien OR Kambodja OR Mali OR Marocko OR Myanmar OR Nicaragua OR Nordkorea OR Pakistan OR Panama OR Senegal OR Syrien OR Sydsudan OR "Trinidad och Tobago" OR Uganda OR Vanuatu OR Zimbabwe OR Albanien OR "Förenade arabemiraten" OR Malta OR Turkiet OR Jemen OR Greenwashing OR grönmålning OR gröntvättning OR Viltbrott OR Människosmuggling OR Anmäld OR Olagligt OR Kriminell OR Brottslig OR Lönestöld OR hasch OR marijuana OR Extremist OR Radikal OR övergrepp OR Försäkringsbedrägeri OR Terrorist OR Militant OR Sedlighet OR Insiderbrott OR arresterad OR krypto OR Kryptovaluta OR "digital valuta" OR bitcoin OR ethereum OR Cannabis OR Subventionsmissbruk OR Borgenärsbrott OR "Brott mot låneförbudet" OR "Målvaktsbestämmelsen" OR "Skatteredovisningsbrott" OR "vårdslös skatteredovisning" OR "vårdslös skatteuppgift" OR "EU-bedrägeri" OR Marknadsmanipulation OR Marknadsmissbruk OR Omställningsstödsbrott OR "Organiserad brottslighet" OR Svindleri OR Bidragsbrott OR "Trolöshet mot huvudman" OR Urkundsförfalskning OR Kortbedräger`

const danishSearchString = `Hvidvaskning OR Hæleri OR Tyveri OR Underslæb OR Røveri OR Afpresning OR Bedrageri OR skattesvig OR Skatteunddragelse OR Korruption OR terrorfinansiering OR Arbejdskriminalitet OR arbejdsmiljøforbrydelser OR Konkurskriminalitet OR Konkursrytteri OR Miljøkriminalitet OR regnskabsforbrydelser OR bogføringsforbrydelser OR Værdipapirbedrageri OR fakturasvig OR investeringssvig OR Direktørsvindel OR "Sort arbejde" OR "Økonomisk kriminalitet" OR pengemuldyr OR Narkotika OR Smugleri OR Kokain OR Heroin OR Skattely OR Afghanistan OR Barbados OR "Burkina Faso" OR Caymanøerne OR Haiti OR Filippinerne OR Iran OR Jamaica OR Yemen OR Jordan OR Cambodja OR Mali OR Marokko OR Myanmar OR Nicaragua OR Nordkorea OR Pakistan OR Panama OR Senegal OR Syrien OR Sydsudan OR "Trinidad og Tobago" OR Uganda OR Vanuatu OR Zimbabwe OR Albanien OR "Forenede Arabiske Emirater" OR Malta OR Tyrkiet OR Grønvask OR grønvaskning OR faunakriminalitet OR Menneskesmugling OR Anmeldt OR Ulovligt OR Kriminel OR Løntyveri OR hamp OR marihuana OR Ekstremist OR Radikal OR Overfald OR Forsikringssvig OR Forsikringssvindel OR Terrorist OR Militant OR Sedelighet OR insiderhandel OR anholdt OR krypto OR kryptovaluta OR "virtuell valuta" OR bitcoin OR ethereum OR Skyldnersvig OR Afgiftsunddragelse OR Toldkriminalitet OR Valutakriminalitet OR Momssvig OR Kursmanipulation OR "leasing-karrusel"`

var languageSearchStrings = map[string]string{
	"nb_no": norwegianSearchString,
	"sv_se": swedishSearchString,
	"da_dk": danishSearchString,
}
