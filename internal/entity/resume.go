package entity

// Resume is the normalized shape produced by the model, stored verbatim and rendered as a site.
// Every field is always present on the wire; unknown strings are "".
type Resume struct {
	Personal   Personal     `json:"personal" bson:"personal"`
	Experience []Experience `json:"experience" bson:"experience"`
	Skills     []Skill      `json:"skills" bson:"skills"`
	Projects   []Project    `json:"projects" bson:"projects"`
	Education  []Education  `json:"education" bson:"education"`
}

type Personal struct {
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role" bson:"role"`
	Tagline  string `json:"tagline" bson:"tagline"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Location string `json:"location" bson:"location"`
	Bio      string `json:"bio" bson:"bio"`
	Avatar   string `json:"avatar" bson:"avatar"`
}

type Experience struct {
	ID           int      `json:"id" bson:"id"`
	Company      string   `json:"company" bson:"company"`
	Position     string   `json:"position" bson:"position"`
	Duration     string   `json:"duration" bson:"duration"`
	Description  string   `json:"description" bson:"description"` // at most ~4 sentences
	Technologies []string `json:"technologies" bson:"technologies"`
}

type Skill struct {
	Name     string `json:"name" bson:"name"`
	Level    int    `json:"level" bson:"level"` // 0..100
	Category string `json:"category" bson:"category"`
}

type Project struct {
	ID              int      `json:"id" bson:"id"`
	Title           string   `json:"title" bson:"title"`
	Description     string   `json:"description" bson:"description"`
	LongDescription string   `json:"longDescription" bson:"longDescription"`
	Image           string   `json:"image" bson:"image"`
	Technologies    []string `json:"technologies" bson:"technologies"`
	Github          string   `json:"github" bson:"github"`
	Demo            string   `json:"demo" bson:"demo"`
	Featured        bool     `json:"featured" bson:"featured"`
}

type Education struct {
	ID          int    `json:"id" bson:"id"`
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	Duration    string `json:"duration" bson:"duration"`
	Description string `json:"description" bson:"description"`
	Logo        string `json:"logo" bson:"logo"`
}

// Normalize replaces nil section slices with empty ones so the record
// always serializes every section as an array.
func (r *Resume) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	for i := range r.Experience {
		if r.Experience[i].Technologies == nil {
			r.Experience[i].Technologies = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
}

// FeaturedProjects returns projects flagged as featured, in order.
func (r Resume) FeaturedProjects() []Project {
	var out []Project
	for _, p := range r.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
