package model

// Subject groups topics for best-subject inference.
type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectReading Subject = "reading"
	SubjectScience Subject = "science"
	SubjectLogic   Subject = "logic"
)

// Topic is one catalog entry. Catalog order is load order and is the
// tie-break order everywhere a deterministic scan is required.
type Topic struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Subject   Subject `json:"subject"`
	ChapterID int     `json:"chapterId"`
}

type Chapter struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Catalog struct {
	Topics   []Topic
	Chapters []Chapter
}

func (c *Catalog) TopicByID(id int) (Topic, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

func (c *Catalog) ChapterByID(id int) (Chapter, bool) {
	for _, ch := range c.Chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}

// TopicsInChapter preserves catalog order.
func (c *Catalog) TopicsInChapter(chapterID int) []Topic {
	var out []Topic
	for _, t := range c.Topics {
		if t.ChapterID == chapterID {
			out = append(out, t)
		}
	}
	return out
}

// Subjects returns the distinct subjects in first-appearance order, which
// is what makes the best-subject tie-break deterministic.
func (c *Catalog) Subjects() []Subject {
	seen := make(map[Subject]bool)
	var out []Subject
	for _, t := range c.Topics {
		if !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// DefaultCatalog is the built-in quest content the game ships with.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Chapters: []Chapter{
			{ID: 1, Title: "Meadow of Numbers"},
			{ID: 2, Title: "Word Burrow"},
			{ID: 3, Title: "Curiosity Creek"},
			{ID: 4, Title: "Puzzle Peak"},
		},
		Topics: []Topic{
			{ID: 1, Title: "Counting to 100", Subject: SubjectMath, ChapterID: 1},
			{ID: 2, Title: "Addition Adventures", Subject: SubjectMath, ChapterID: 1},
			{ID: 3, Title: "Subtraction Safari", Subject: SubjectMath, ChapterID: 1},
			{ID: 4, Title: "Shapes All Around", Subject: SubjectMath, ChapterID: 1},
			{ID: 5, Title: "Letter Sounds", Subject: SubjectReading, ChapterID: 2},
			{ID: 6, Title: "Sight Words", Subject: SubjectReading, ChapterID: 2},
			{ID: 7, Title: "Rhyme Time", Subject: SubjectReading, ChapterID: 2},
			{ID: 8, Title: "Story Order", Subject: SubjectReading, ChapterID: 2},
			{ID: 9, Title: "Animal Habitats", Subject: SubjectScience, ChapterID: 3},
			{ID: 10, Title: "Weather Watch", Subject: SubjectScience, ChapterID: 3},
			{ID: 11, Title: "Plant Life Cycle", Subject: SubjectScience, ChapterID: 3},
			{ID: 12, Title: "The Five Senses", Subject: SubjectScience, ChapterID: 3},
			{ID: 13, Title: "Pattern Play", Subject: SubjectLogic, ChapterID: 4},
			{ID: 14, Title: "Sorting and Matching", Subject: SubjectLogic, ChapterID: 4},
			{ID: 15, Title: "Mazes and Paths", Subject: SubjectLogic, ChapterID: 4},
			{ID: 16, Title: "What Comes Next", Subject: SubjectLogic, ChapterID: 4},
		},
	}
}
