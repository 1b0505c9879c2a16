package app

// The catalog is split into two read-only tables so that message composition
// can treat facts differently from holidays and observances: fixedEvents
// holds everything celebrated on a date, historicalFacts holds things that
// merely happened on it. Both are keyed by (month, day) and never mutated
// after process start, so concurrent reads need no locking.

// fixedEvents maps (month, day) to the holidays, observances and
// international days fixed to that date every year.
var fixedEvents = map[CalendarKey][]SpecialEvent{
	{1, 1}: {
		{Name: "New Year's Day", Category: CategoryPublicHoliday, Description: "First day of the year in the Gregorian calendar", Region: "US"},
		{Name: "World Day of Peace", Category: CategoryInternationalDay, Description: "Day of prayer for peace observed since 1968"},
	},
	{2, 2}: {
		{Name: "Groundhog Day", Category: CategoryObservance, Description: "Folklore has a groundhog's shadow predict six more weeks of winter", Region: "US"},
	},
	{2, 14}: {
		{Name: "Valentine's Day", Category: CategoryObservance, Description: "Celebration of love and affection"},
	},
	{3, 8}: {
		{Name: "International Women's Day", Category: CategoryInternationalDay, Description: "Global day celebrating the achievements of women"},
	},
	{3, 14}: {
		{Name: "Pi Day", Category: CategoryObservance, Description: "Celebration of the mathematical constant pi (3.14)"},
	},
	{3, 17}: {
		{Name: "St. Patrick's Day", Category: CategoryObservance, Description: "Cultural and religious celebration of Irish heritage"},
	},
	{3, 22}: {
		{Name: "World Water Day", Category: CategoryInternationalDay, Description: "UN day highlighting the importance of fresh water"},
	},
	{4, 1}: {
		{Name: "April Fools' Day", Category: CategoryObservance, Description: "Day of practical jokes and hoaxes"},
	},
	{4, 22}: {
		{Name: "Earth Day", Category: CategoryInternationalDay, Description: "Annual event supporting environmental protection"},
	},
	{5, 1}: {
		{Name: "International Workers' Day", Category: CategoryObservance, Description: "Celebration of laborers and the working class"},
	},
	{5, 5}: {
		{Name: "Cinco de Mayo", Category: CategoryObservance, Description: "Commemorates the Mexican victory at the Battle of Puebla in 1862", Region: "US"},
	},
	{6, 5}: {
		{Name: "World Environment Day", Category: CategoryInternationalDay, Description: "UN day for encouraging awareness and action for the environment"},
	},
	{6, 8}: {
		{Name: "World Oceans Day", Category: CategoryInternationalDay, Description: "UN day to celebrate the role of the oceans"},
	},
	{6, 14}: {
		{Name: "Flag Day", Category: CategoryObservance, Description: "Commemorates the adoption of the United States flag in 1777", Region: "US"},
	},
	{6, 19}: {
		{Name: "Juneteenth National Independence Day", Category: CategoryPublicHoliday, Description: "Commemorates the end of slavery in the United States", Region: "US"},
	},
	{7, 4}: {
		{Name: "Independence Day", Category: CategoryPublicHoliday, Description: "Commemorates the adoption of the Declaration of Independence in 1776", Region: "US"},
	},
	{7, 30}: {
		{Name: "International Day of Friendship", Category: CategoryInternationalDay},
	},
	{8, 19}: {
		{Name: "World Humanitarian Day", Category: CategoryInternationalDay, Description: "Honors humanitarian workers and those who lost their lives in humanitarian service"},
	},
	{9, 21}: {
		{Name: "International Day of Peace", Category: CategoryInternationalDay, Description: "UN day devoted to strengthening the ideals of peace"},
	},
	{10, 1}: {
		{Name: "International Coffee Day", Category: CategoryObservance, Description: "Celebration of coffee and recognition of the people who grow it"},
	},
	{10, 5}: {
		{Name: "World Teachers' Day", Category: CategoryInternationalDay, Description: "Commemorates the signing of the 1966 UNESCO recommendation on the status of teachers"},
	},
	{10, 24}: {
		{Name: "United Nations Day", Category: CategoryInternationalDay, Description: "Anniversary of the UN Charter entering into force in 1945"},
	},
	{10, 31}: {
		{Name: "Halloween", Category: CategoryObservance, Description: "Evening of costumes, trick-or-treating and jack-o'-lanterns"},
	},
	{11, 11}: {
		{Name: "Veterans Day", Category: CategoryPublicHoliday, Description: "Honors military veterans of the United States Armed Forces", Region: "US"},
	},
	{12, 10}: {
		{Name: "Human Rights Day", Category: CategoryInternationalDay, Description: "Anniversary of the Universal Declaration of Human Rights"},
	},
	{12, 24}: {
		{Name: "Christmas Eve", Category: CategoryObservance, Region: "US"},
	},
	{12, 25}: {
		{Name: "Christmas Day", Category: CategoryPublicHoliday, Description: "Christian celebration of the birth of Jesus", Region: "US"},
	},
	{12, 31}: {
		{Name: "New Year's Eve", Category: CategoryObservance, Description: "Last day of the Gregorian calendar year"},
	},
}

// historicalFacts maps (month, day) to notable things that happened on that
// date. Facts carry no region; the year belongs in the description.
var historicalFacts = map[CalendarKey][]SpecialEvent{
	{2, 20}: {
		{Name: "John Glenn orbits the Earth", Category: CategoryHistoricalFact, Description: "In 1962, John Glenn became the first American to orbit the Earth aboard Friendship 7"},
	},
	{3, 10}: {
		{Name: "First telephone call", Category: CategoryHistoricalFact, Description: "In 1876, Alexander Graham Bell made the first successful telephone call to his assistant Thomas Watson"},
	},
	{3, 14}: {
		{Name: "Albert Einstein born", Category: CategoryHistoricalFact, Description: "In 1879, physicist Albert Einstein was born in Ulm, Germany"},
	},
	{4, 12}: {
		{Name: "First human spaceflight", Category: CategoryHistoricalFact, Description: "In 1961, Yuri Gagarin became the first human in space, orbiting the Earth aboard Vostok 1"},
	},
	{5, 29}: {
		{Name: "First ascent of Mount Everest", Category: CategoryHistoricalFact, Description: "In 1953, Edmund Hillary and Tenzing Norgay became the first climbers confirmed to reach the summit"},
	},
	{6, 15}: {
		{Name: "Magna Carta sealed", Category: CategoryHistoricalFact, Description: "In 1215, King John of England put his seal to the Magna Carta at Runnymede"},
	},
	{7, 4}: {
		{Name: "Declaration of Independence adopted", Category: CategoryHistoricalFact, Description: "In 1776, the Continental Congress adopted the Declaration of Independence in Philadelphia"},
	},
	{7, 20}: {
		{Name: "Apollo 11 Moon landing", Category: CategoryHistoricalFact, Description: "In 1969, Neil Armstrong and Buzz Aldrin became the first humans to walk on the Moon"},
	},
	{8, 6}: {
		{Name: "First website published", Category: CategoryHistoricalFact, Description: "In 1991, Tim Berners-Lee published the world's first website at CERN"},
	},
	{10, 4}: {
		{Name: "Sputnik 1 launched", Category: CategoryHistoricalFact, Description: "In 1957, the Soviet Union launched the first artificial satellite, opening the Space Age"},
	},
	{10, 14}: {
		{Name: "Sound barrier broken", Category: CategoryHistoricalFact, Description: "In 1947, Chuck Yeager flew the Bell X-1 faster than the speed of sound"},
	},
	{11, 9}: {
		{Name: "Fall of the Berlin Wall", Category: CategoryHistoricalFact, Description: "In 1989, East Germany opened its border crossings and the Berlin Wall fell"},
	},
	{12, 17}: {
		{Name: "First powered flight", Category: CategoryHistoricalFact, Description: "In 1903, the Wright brothers made the first sustained powered airplane flights at Kitty Hawk"},
	},
}

// EventsForDate returns the fixed-date events for (month, day): catalog
// entries first, then historical facts. A date with no entries yields an
// empty slice, not an error.
func EventsForDate(month, day int) []SpecialEvent {
	key := CalendarKey{Month: month, Day: day}

	fixed := fixedEvents[key]
	facts := historicalFacts[key]

	events := make([]SpecialEvent, 0, len(fixed)+len(facts))
	events = append(events, fixed...)
	events = append(events, facts...)
	return events
}

// StaticCatalog is the built-in EventSource backed by the package tables.
type StaticCatalog struct{}

// EventsForDate implements EventSource.
func (StaticCatalog) EventsForDate(month, day int) []SpecialEvent {
	return EventsForDate(month, day)
}
