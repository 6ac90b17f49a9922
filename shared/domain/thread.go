package domain

type (
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	UserId    = string
)

var (
	newThreadSchema    = newSchema("NEW_THREAD", required("title"), required("body"), required("owner"))
	addedThreadSchema  = newSchema("ADDED_THREAD", required("id"), required("title"), required("owner"))
	threadDetailSchema = newSchema("THREAD_DETAIL", required("id"), required("title"), required("body"), required("created_at"), required("username"))
)

// to iterate thru layers: handler -> service -> storage
type NewThread struct {
	Title string
	Body  string
	Owner UserId
}

func ParseNewThread(p Payload) (NewThread, error) {
	if err := newThreadSchema.validate(p); err != nil {
		return NewThread{}, err
	}
	return NewThread{Title: p.str("title"), Body: p.str("body"), Owner: p.str("owner")}, nil
}

type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func ParseAddedThread(p Payload) (AddedThread, error) {
	if err := addedThreadSchema.validate(p); err != nil {
		return AddedThread{}, err
	}
	return AddedThread{Id: p.str("id"), Title: p.str("title"), Owner: p.str("owner")}, nil
}

// ThreadRow is a threads table row as stored.
type ThreadRow struct {
	Id        ThreadId `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	Owner     UserId   `json:"owner"`
	CreatedAt string   `json:"created_at"`
}

func (r ThreadRow) Payload(username string) Payload {
	return Payload{
		"id":         r.Id,
		"title":      r.Title,
		"body":       r.Body,
		"created_at": r.CreatedAt,
		"username":   username,
	}
}

// ThreadDetail is the public view of a thread with its comments.
type ThreadDetail struct {
	Id       ThreadId  `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

func ParseThreadDetail(p Payload) (ThreadDetail, error) {
	if err := threadDetailSchema.validate(p); err != nil {
		return ThreadDetail{}, err
	}
	return ThreadDetail{
		Id:       p.str("id"),
		Title:    p.str("title"),
		Body:     p.str("body"),
		Date:     p.str("created_at"),
		Username: p.str("username"),
		Comments: []Comment{},
	}, nil
}
