// internal/event/types.go
package event

const (
	GridRebuilt     EventType = "GridRebuilt"     // Сетка перестроена, Data: hexmap.Configuration
	PresetSelected  EventType = "PresetSelected"  // Выбран пресет, Data: имя пресета
	PresetsReloaded EventType = "PresetsReloaded" // Data: количество пресетов
	HoverChanged    EventType = "HoverChanged"    // Data: гекс под курсором или nil
)
