package util

const (
	ServiceName    = "Course Builder API"
	ServiceVersion = "1.0.0"
)

// 快照数据文件名
const (
	CoursesFile       = "courses.json"
	LessonsFile       = "lessons.json"
	UsersFile         = "users.json"
	AchievementsFile  = "achievements.json"
	UserProgressFile  = "user-progress.json"
	LearningPathsFile = "learning-paths.json"
)

const (
	QueryCourseType = "type"
)
