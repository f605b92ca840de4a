package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassList  ChromeClass = "programlist"
	ClassItem  ChromeClass = "programlist-item"
	ClassName  ChromeClass = "programlist-name"
	ClassMeta  ChromeClass = "programlist-meta"
	ClassEmpty ChromeClass = "programlist-empty"
)

// Default*Class values are applied when RenderOptions.Classes overrides are
// empty.
const (
	DefaultListClass  = string(ClassList)
	DefaultItemClass  = string(ClassItem)
	DefaultNameClass  = string(ClassName)
	DefaultMetaClass  = string(ClassMeta)
	DefaultEmptyClass = string(ClassEmpty)
)

func chromeClasses(overrides map[string]string) map[string]string {
	classes := map[string]string{
		"list":  DefaultListClass,
		"item":  DefaultItemClass,
		"name":  DefaultNameClass,
		"meta":  DefaultMetaClass,
		"empty": DefaultEmptyClass,
	}
	for slot, class := range overrides {
		if class == "" {
			continue
		}
		if _, ok := classes[slot]; ok {
			classes[slot] = class
		}
	}
	return classes
}
