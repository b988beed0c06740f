package model

type CourseType string

const (
	CourseTypeGeneral      CourseType = "general"
	CourseTypePersonalized CourseType = "personalized"
)

// swagger:model Course
type Course struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Instructor  string          `json:"instructor"`
	Skills      []string        `json:"skills"`
	CourseType  CourseType      `json:"courseType"`
	Metadata    CourseMetadata  `json:"metadata"`
	Structure   CourseStructure `json:"structure"`
}

type CourseMetadata struct {
	Difficulty string `json:"difficulty"`
	Duration   string `json:"duration"`
}

type CourseStructure struct {
	Topics []Topic `json:"topics"`
}

type Topic struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Modules []CourseModule `json:"modules"`
}

type CourseModule struct {
	ID      string       `json:"id"`
	TopicID string       `json:"topicId"`
	Title   string       `json:"title"`
	Lessons []LessonStub `json:"lessons"`
}

// LessonStub 课程结构中对课时的引用，完整数据见 Lesson
type LessonStub struct {
	ID       string `json:"id"`
	ModuleID string `json:"moduleId"`
	Title    string `json:"title"`
}

// LessonIDs 按结构顺序返回课程下全部课时ID
func (c *Course) LessonIDs() []string {
	var ids []string
	for _, t := range c.Structure.Topics {
		for _, m := range t.Modules {
			for _, l := range m.Lessons {
				ids = append(ids, l.ID)
			}
		}
	}
	return ids
}

func (c *Course) IsPersonalized() bool {
	return c.CourseType == CourseTypePersonalized
}
