/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mockserver

import (
	"fmt"
	"strings"

	"k8s.io/utils/ptr"

	"github.com/unikorn-cloud/apitest/pkg/placeholder"
)

const (
	postsPerUser    = 10
	commentsPerPost = 5
)

// Dataset is the canned content served by the mock server.
type Dataset struct {
	Users    []placeholder.User
	Posts    []placeholder.Post
	Comments []placeholder.Comment
}

type person struct {
	name     string
	username string
	email    string
	city     string
}

//nolint:gochecknoglobals
var people = []person{
	{name: "Leanne Graham", username: "Bret", email: "Sincere@april.biz", city: "Gwenborough"},
	{name: "Ervin Howell", username: "Antonette", email: "Shanna@melissa.tv", city: "Wisokyburgh"},
	{name: "Clementine Bauch", username: "Samantha", email: "Nathan@yesenia.net", city: "McKenziehaven"},
	{name: "Patricia Lebsack", username: "Karianne", email: "Julianne.OConner@kory.org", city: "South Elvis"},
	{name: "Chelsey Dietrich", username: "Kamren", email: "Lucio_Hettinger@annie.ca", city: "Roscoeview"},
	{name: "Mrs. Dennis Schulist", username: "Leopoldo_Corkery", email: "Karley_Dach@jasper.info", city: "South Christy"},
	{name: "Kurtis Weissnat", username: "Elwyn.Skiles", email: "Telly.Hoeger@billy.biz", city: "Howemouth"},
	{name: "Nicholas Runolfsdottir V", username: "Maxime_Nienow", email: "Sherwood@rosamond.me", city: "Aliyaview"},
	{name: "Glenna Reichert", username: "Delphine", email: "Chaim_McDermott@dana.io", city: "Bartholomebury"},
	{name: "Clementina DuBuque", username: "Moriah.Stanton", email: "Rey.Padberg@karina.biz", city: "Lebsackbury"},
}

// NewDataset builds the default dataset: ten users owning ten posts each,
// every post carrying five comments.  Identifiers start at one and are
// contiguous, as on the public service.
func NewDataset() *Dataset {
	d := &Dataset{}

	for i, p := range people {
		userID := i + 1

		d.Users = append(d.Users, placeholder.User{
			Id:       userID,
			Name:     p.name,
			Username: p.username,
			Email:    p.email,
			Address: &placeholder.Address{
				Street:  fmt.Sprintf("%d Placeholder Street", 100+userID),
				Suite:   ptr.To(fmt.Sprintf("Apt. %d", 500+userID)),
				City:    p.city,
				Zipcode: fmt.Sprintf("%05d", 10000+userID),
				Geo: &placeholder.Geo{
					Lat: ptr.To(fmt.Sprintf("%d.0000", -userID)),
					Lng: ptr.To(fmt.Sprintf("%d.0000", userID*10)),
				},
			},
			Phone:   ptr.To(fmt.Sprintf("1-770-736-80%02d", userID)),
			Website: ptr.To(strings.ToLower(p.username) + ".org"),
			Company: &placeholder.Company{
				Name:        ptr.To(p.city + " Group"),
				CatchPhrase: ptr.To("Multi-layered client-server neural-net"),
				Bs:          ptr.To("harness real-time e-markets"),
			},
		})

		for j := range postsPerUser {
			postID := i*postsPerUser + j + 1

			d.Posts = append(d.Posts, placeholder.Post{
				Id:     postID,
				UserId: userID,
				Title:  fmt.Sprintf("post %d by %s", postID, p.username),
				Body:   fmt.Sprintf("body of post %d\nwritten by %s", postID, p.name),
			})

			for k := range commentsPerPost {
				commentID := (postID-1)*commentsPerPost + k + 1

				d.Comments = append(d.Comments, placeholder.Comment{
					Id:     commentID,
					PostId: postID,
					Name:   fmt.Sprintf("comment %d on post %d", commentID, postID),
					Email:  fmt.Sprintf("commenter%d@example.com", commentID),
					Body:   fmt.Sprintf("comment body %d", commentID),
				})
			}
		}
	}

	return d
}

func (d *Dataset) post(id int) (placeholder.Post, bool) {
	for _, p := range d.Posts {
		if p.Id == id {
			return p, true
		}
	}

	return placeholder.Post{}, false
}

func (d *Dataset) user(id int) (placeholder.User, bool) {
	for _, u := range d.Users {
		if u.Id == id {
			return u, true
		}
	}

	return placeholder.User{}, false
}

func (d *Dataset) commentsFor(postID int) []placeholder.Comment {
	comments := []placeholder.Comment{}

	for _, c := range d.Comments {
		if c.PostId == postID {
			comments = append(comments, c)
		}
	}

	return comments
}
