package domain

import "errors"

// ErrNotFound is returned for a task id that is not in the definition list.
var ErrNotFound = errors.New("task not found")

// Icon identifies the glyph shown next to a task.
type Icon string

const (
	IconSun         Icon = "Sun"
	IconBaby        Icon = "Baby"
	IconShirt       Icon = "Shirt"
	IconSprayCan    Icon = "SprayCan"
	IconUtensils    Icon = "Utensils"
	IconShoppingBag Icon = "ShoppingBag"
	IconChefHat     Icon = "ChefHat"
	IconShowerHead  Icon = "ShowerHead"
	IconCircle      Icon = "Circle"
)

var glyphs = map[Icon]string{
	IconSun:         "☀️",
	IconBaby:        "👶",
	IconShirt:       "👕",
	IconSprayCan:    "🧴",
	IconUtensils:    "🍴",
	IconShoppingBag: "🛍️",
	IconChefHat:     "👨‍🍳",
	IconShowerHead:  "🚿",
	IconCircle:      "⚪",
}

// Resolve maps unknown identifiers to IconCircle.
func (i Icon) Resolve() Icon {
	if _, ok := glyphs[i]; ok {
		return i
	}
	return IconCircle
}

// Glyph returns the renderer reference for the icon.
func (i Icon) Glyph() string {
	return glyphs[i.Resolve()]
}

// TaskDefinition is one entry of the daily schedule.
type TaskDefinition struct {
	ID        string `json:"id"`
	Time      string `json:"time"`
	Icon      Icon   `json:"icon"`
	Zh        string `json:"zh"`
	En        string `json:"en"`
	IDLang    string `json:"id_lang"`
	IsLaundry bool   `json:"is_laundry,omitempty"`
}

// RenderedTask is a definition joined with today's completion flag.
type RenderedTask struct {
	TaskDefinition
	Icon        Icon   `json:"icon"`
	Glyph       string `json:"glyph"`
	IsCompleted bool   `json:"is_completed"`
}

// Render joins def with its completion flag.
func Render(def TaskDefinition, completed bool) RenderedTask {
	return RenderedTask{
		TaskDefinition: def,
		Icon:           def.Icon.Resolve(),
		Glyph:          def.Icon.Glyph(),
		IsCompleted:    completed,
	}
}

// DefaultTasks returns the built-in schedule. Order is significant.
func DefaultTasks() []TaskDefinition {
	return []TaskDefinition{
		{ID: "t1", Time: "07:00", Icon: IconSun, Zh: "起床 / 準備早餐", En: "Wake up / Prepare Breakfast", IDLang: "Bangun / Siapkan Sarapan"},
		{ID: "t2", Time: "08:00", Icon: IconBaby, Zh: "送小孩上學", En: "Take kids to school", IDLang: "Antar anak sekolah"},
		{ID: "t3", Time: "09:00", Icon: IconShirt, Zh: "洗衣服", En: "Laundry", IDLang: "Mencuci baju", IsLaundry: true},
		{ID: "t4", Time: "10:00", Icon: IconSprayCan, Zh: "清潔客廳", En: "Clean Living Room", IDLang: "Bersihkan Ruang Tamu"},
		{ID: "t5", Time: "12:00", Icon: IconUtensils, Zh: "準備午餐", En: "Prepare Lunch", IDLang: "Siapkan Makan Siang"},
		{ID: "t6", Time: "15:00", Icon: IconShoppingBag, Zh: "買菜", En: "Grocery Shopping", IDLang: "Belanja sayur"},
		{ID: "t7", Time: "18:00", Icon: IconChefHat, Zh: "準備晚餐", En: "Prepare Dinner", IDLang: "Siapkan Makan Malam"},
		{ID: "t8", Time: "20:00", Icon: IconShowerHead, Zh: "小孩洗澡", En: "Kids Shower", IDLang: "Mandikan anak"},
	}
}

// ValidateDefinitions rejects empty or duplicate ids.
func ValidateDefinitions(defs []TaskDefinition) error {
	if len(defs) == 0 {
		return errors.New("at least one task is required")
	}
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if d.ID == "" {
			return errors.New("task id is required")
		}
		if _, dup := seen[d.ID]; dup {
			return errors.New("duplicate task id " + d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return nil
}
