package repository

// Collection names match the live Ziffy deployment; renaming any of them
// orphans existing data.
const (
	UsersCollection         = "userCollection"
	PostsCollection         = "postCollection"
	CommentsCollection      = "commentCollection"
	PaymentsCollection      = "paymentCollection"
	ReportsCollection       = "reportCollection"
	TagsCollection          = "tagCollection"
	AnnouncementsCollection = "announcementCollection"
)
