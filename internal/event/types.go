// internal/event/types.go
package event

import "image"

const (
	DragStarted       EventType = "DragStarted"       // нажата левая кнопка, Data: Pointer
	DragMoved         EventType = "DragMoved"         // курсор сдвинулся при зажатой кнопке, Data: Pointer
	DragEnded         EventType = "DragEnded"         // кнопка отпущена
	SettingsRequested EventType = "SettingsRequested" // двойной клик
	SettingsApplied   EventType = "SettingsApplied"   // Data: Settings
	CloseRequested    EventType = "CloseRequested"    // Escape
)

// Pointer — положение курсора в момент события.
type Pointer struct {
	Cursor image.Point // относительно окна
	Window image.Point // позиция окна на экране
}

// Settings — значения, подтверждённые в диалоге настроек.
type Settings struct {
	Opacity int
	Size    int
	Wheel   string
	Save    bool // записать в конфиг, а не только применить
}
