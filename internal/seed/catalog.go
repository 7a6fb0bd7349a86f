package seed

// Catalog is the embedded book list loaded by the seed-books command.
// Entries mirror real published works; cover links point at Open Library.
var Catalog = []Book{
	{
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Description: "A gripping, heart-wrenching, and wholly remarkable tale of coming-of-age in a South poisoned by virulent prejudice.",
		ISBN:        "9780061120084",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780061120084-L.jpg",
	},
	{
		Title:       "1984",
		Author:      "George Orwell",
		Description: "A dystopian social science fiction novel and cautionary tale about the dangers of totalitarianism.",
		ISBN:        "9780451524935",
		Genre:       "Dystopian Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780451524935-L.jpg",
	},
	{
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Description: "A romantic novel of manners that follows the character development of Elizabeth Bennet.",
		ISBN:        "9780141439518",
		Genre:       "Romance",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg",
	},
	{
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Description: "A novel about the impossibility of recapturing the past and the difficulty of altering one's future.",
		ISBN:        "9780743273565",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780743273565-L.jpg",
	},
	{
		Title:       "Harry Potter and the Philosopher's Stone",
		Author:      "J.K. Rowling",
		Description: "A young wizard's journey begins at Hogwarts School of Witchcraft and Wizardry.",
		ISBN:        "9780747532699",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780747532699-L.jpg",
	},
	{
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Description: "A fantasy novel about the quest of home-loving hobbit Bilbo Baggins.",
		ISBN:        "9780547928227",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780547928227-L.jpg",
	},
	{
		Title:       "The Catcher in the Rye",
		Author:      "J.D. Salinger",
		Description: "A story about teenage rebellion and alienation narrated by Holden Caulfield.",
		ISBN:        "9780316769174",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780316769174-L.jpg",
	},
	{
		Title:       "The Lord of the Rings",
		Author:      "J.R.R. Tolkien",
		Description: "An epic high-fantasy novel about the quest to destroy the One Ring.",
		ISBN:        "9780544003415",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780544003415-L.jpg",
	},
	{
		Title:       "Animal Farm",
		Author:      "George Orwell",
		Description: "An allegorical novella reflecting events leading up to the Russian Revolution.",
		ISBN:        "9780451526342",
		Genre:       "Political Satire",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780451526342-L.jpg",
	},
	{
		Title:       "Brave New World",
		Author:      "Aldous Huxley",
		Description: "A dystopian novel set in a futuristic World State of genetically modified citizens.",
		ISBN:        "9780060850524",
		Genre:       "Dystopian Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780060850524-L.jpg",
	},
	{
		Title:       "The Chronicles of Narnia",
		Author:      "C.S. Lewis",
		Description: "A series of seven fantasy novels set in the magical land of Narnia.",
		ISBN:        "9780066238500",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780066238500-L.jpg",
	},
	{
		Title:       "Fahrenheit 451",
		Author:      "Ray Bradbury",
		Description: "A dystopian novel about a future where books are outlawed and burned.",
		ISBN:        "9781451673319",
		Genre:       "Dystopian Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781451673319-L.jpg",
	},
	{
		Title:       "Moby-Dick",
		Author:      "Herman Melville",
		Description: "The narrative of Captain Ahab's obsessive quest to kill the white whale.",
		ISBN:        "9780142437247",
		Genre:       "Adventure",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780142437247-L.jpg",
	},
	{
		Title:       "Jane Eyre",
		Author:      "Charlotte Brontë",
		Description: "A novel following the emotions and experiences of its eponymous heroine.",
		ISBN:        "9780141441146",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780141441146-L.jpg",
	},
	{
		Title:       "Wuthering Heights",
		Author:      "Emily Brontë",
		Description: "A tale of passion and revenge set on the Yorkshire moors.",
		ISBN:        "9780141439556",
		Genre:       "Gothic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780141439556-L.jpg",
	},
	{
		Title:       "The Odyssey",
		Author:      "Homer",
		Description: "An ancient Greek epic poem about Odysseus's journey home after the Trojan War.",
		ISBN:        "9780140268867",
		Genre:       "Epic Poetry",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780140268867-L.jpg",
	},
	{
		Title:       "Crime and Punishment",
		Author:      "Fyodor Dostoevsky",
		Description: "A psychological novel about the mental anguish of a poor student who murders.",
		ISBN:        "9780486415871",
		Genre:       "Philosophical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780486415871-L.jpg",
	},
	{
		Title:       "The Picture of Dorian Gray",
		Author:      "Oscar Wilde",
		Description: "A philosophical novel about a man whose portrait ages while he remains young.",
		ISBN:        "9780141439570",
		Genre:       "Gothic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780141439570-L.jpg",
	},
	{
		Title:       "Les Misérables",
		Author:      "Victor Hugo",
		Description: "A French historical novel following the lives of several characters through social injustice.",
		ISBN:        "9780451419439",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780451419439-L.jpg",
	},
	{
		Title:       "The Adventures of Huckleberry Finn",
		Author:      "Mark Twain",
		Description: "A novel about a young boy's adventures along the Mississippi River.",
		ISBN:        "9780486280615",
		Genre:       "Adventure",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780486280615-L.jpg",
	},
	{
		Title:       "Dracula",
		Author:      "Bram Stoker",
		Description: "A Gothic horror novel about the vampire Count Dracula.",
		ISBN:        "9780141439846",
		Genre:       "Gothic Horror",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780141439846-L.jpg",
	},
	{
		Title:       "Frankenstein",
		Author:      "Mary Shelley",
		Description: "A novel about a scientist who creates a sapient creature in an unorthodox experiment.",
		ISBN:        "9780486282114",
		Genre:       "Gothic Horror",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780486282114-L.jpg",
	},
	{
		Title:       "The Divine Comedy",
		Author:      "Dante Alighieri",
		Description: "An Italian long narrative poem describing the author's journey through Hell, Purgatory, and Paradise.",
		ISBN:        "9780142437223",
		Genre:       "Epic Poetry",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780142437223-L.jpg",
	},
	{
		Title:       "War and Peace",
		Author:      "Leo Tolstoy",
		Description: "A novel that chronicles the history of the French invasion of Russia.",
		ISBN:        "9780199232765",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780199232765-L.jpg",
	},
	{
		Title:       "Anna Karenina",
		Author:      "Leo Tolstoy",
		Description: "A novel about an aristocratic woman's tragic affair with a military officer.",
		ISBN:        "9780143035008",
		Genre:       "Romance",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780143035008-L.jpg",
	},
	{
		Title:       "The Brothers Karamazov",
		Author:      "Fyodor Dostoevsky",
		Description: "A philosophical novel set in 19th-century Russia about faith, doubt, and reason.",
		ISBN:        "9780374528379",
		Genre:       "Philosophical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780374528379-L.jpg",
	},
	{
		Title:       "Don Quixote",
		Author:      "Miguel de Cervantes",
		Description: "A Spanish novel about a man who loses his sanity and becomes a knight-errant.",
		ISBN:        "9780142437230",
		Genre:       "Adventure",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780142437230-L.jpg",
	},
	{
		Title:       "One Hundred Years of Solitude",
		Author:      "Gabriel García Márquez",
		Description: "A landmark novel telling the multi-generational story of the Buendía family.",
		ISBN:        "9780060883287",
		Genre:       "Magical Realism",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780060883287-L.jpg",
	},
	{
		Title:       "The Alchemist",
		Author:      "Paulo Coelho",
		Description: "A novel about a young Andalusian shepherd on a journey to Egypt.",
		ISBN:        "9780062315007",
		Genre:       "Adventure",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780062315007-L.jpg",
	},
	{
		Title:       "The Little Prince",
		Author:      "Antoine de Saint-Exupéry",
		Description: "A poetic tale about a young prince who visits various planets in space.",
		ISBN:        "9780156012195",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780156012195-L.jpg",
	},
	{
		Title:       "Catch-22",
		Author:      "Joseph Heller",
		Description: "A satirical novel set during World War II about circular logic and bureaucracy.",
		ISBN:        "9781451626650",
		Genre:       "Satire",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781451626650-L.jpg",
	},
	{
		Title:       "Slaughterhouse-Five",
		Author:      "Kurt Vonnegut",
		Description: "A science fiction-infused anti-war novel about Billy Pilgrim and the bombing of Dresden.",
		ISBN:        "9780385333849",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780385333849-L.jpg",
	},
	{
		Title:       "The Handmaid's Tale",
		Author:      "Margaret Atwood",
		Description: "A dystopian novel about a totalitarian society where women have no rights.",
		ISBN:        "9780385490818",
		Genre:       "Dystopian Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780385490818-L.jpg",
	},
	{
		Title:       "The Road",
		Author:      "Cormac McCarthy",
		Description: "A post-apocalyptic novel about a father and son's journey through a devastated America.",
		ISBN:        "9780307387899",
		Genre:       "Post-Apocalyptic",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307387899-L.jpg",
	},
	{
		Title:       "Life of Pi",
		Author:      "Yann Martel",
		Description: "A fantasy adventure novel about an Indian boy surviving a shipwreck with a Bengal tiger.",
		ISBN:        "9780156027328",
		Genre:       "Adventure",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780156027328-L.jpg",
	},
	{
		Title:       "The Kite Runner",
		Author:      "Khaled Hosseini",
		Description: "A novel about friendship and redemption set in Afghanistan.",
		ISBN:        "9781594631931",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781594631931-L.jpg",
	},
	{
		Title:       "The Book Thief",
		Author:      "Markus Zusak",
		Description: "A historical novel narrated by Death about a girl living in Nazi Germany.",
		ISBN:        "9780375842207",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780375842207-L.jpg",
	},
	{
		Title:       "The Hunger Games",
		Author:      "Suzanne Collins",
		Description: "A dystopian novel about a televised fight to the death among teenagers.",
		ISBN:        "9780439023481",
		Genre:       "Dystopian Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780439023481-L.jpg",
	},
	{
		Title:       "The Da Vinci Code",
		Author:      "Dan Brown",
		Description: "A mystery thriller following symbologist Robert Langdon.",
		ISBN:        "9780385504201",
		Genre:       "Mystery Thriller",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780385504201-L.jpg",
	},
	{
		Title:       "The Girl with the Dragon Tattoo",
		Author:      "Stieg Larsson",
		Description: "A psychological thriller about a journalist and a hacker investigating a disappearance.",
		ISBN:        "9780307454546",
		Genre:       "Mystery Thriller",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307454546-L.jpg",
	},
	{
		Title:       "Gone Girl",
		Author:      "Gillian Flynn",
		Description: "A psychological thriller about a woman who disappears on her fifth wedding anniversary.",
		ISBN:        "9780307588371",
		Genre:       "Mystery Thriller",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307588371-L.jpg",
	},
	{
		Title:       "The Fault in Our Stars",
		Author:      "John Green",
		Description: "A novel about two teenagers with cancer who fall in love.",
		ISBN:        "9780525478812",
		Genre:       "Young Adult",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780525478812-L.jpg",
	},
	{
		Title:       "The Martian",
		Author:      "Andy Weir",
		Description: "A science fiction novel about an astronaut stranded on Mars.",
		ISBN:        "9780553418026",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780553418026-L.jpg",
	},
	{
		Title:       "Ready Player One",
		Author:      "Ernest Cline",
		Description: "A science fiction novel set in a dystopian future dominated by virtual reality.",
		ISBN:        "9780307887436",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307887436-L.jpg",
	},
	{
		Title:       "The Shining",
		Author:      "Stephen King",
		Description: "A horror novel about a family trapped in an isolated hotel during winter.",
		ISBN:        "9780307743657",
		Genre:       "Horror",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307743657-L.jpg",
	},
	{
		Title:       "It",
		Author:      "Stephen King",
		Description: "A horror novel about a group of children terrorized by a shape-shifting entity.",
		ISBN:        "9781501142970",
		Genre:       "Horror",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781501142970-L.jpg",
	},
	{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Description: "A science fiction novel set on the desert planet Arrakis.",
		ISBN:        "9780441172719",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780441172719-L.jpg",
	},
	{
		Title:       "Foundation",
		Author:      "Isaac Asimov",
		Description: "A science fiction novel about the fall and rise of galactic civilizations.",
		ISBN:        "9780553293357",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780553293357-L.jpg",
	},
	{
		Title:       "Neuromancer",
		Author:      "William Gibson",
		Description: "A cyberpunk novel about a washed-up computer hacker hired for one last job.",
		ISBN:        "9780441569595",
		Genre:       "Cyberpunk",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780441569595-L.jpg",
	},
	{
		Title:       "Sapiens: A Brief History of Humankind",
		Author:      "Yuval Noah Harari",
		Description: "A groundbreaking narrative of humanity's creation and evolution.",
		ISBN:        "9780062316097",
		Genre:       "Non-Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780062316097-L.jpg",
	},
	{
		Title:       "The Hitchhiker's Guide to the Galaxy",
		Author:      "Douglas Adams",
		Description: "A comic science fiction series about the adventures of Arthur Dent.",
		ISBN:        "9780345391803",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780345391803-L.jpg",
	},
	{
		Title:       "A Game of Thrones",
		Author:      "George R.R. Martin",
		Description: "The first novel in an epic fantasy series about power struggles in Westeros.",
		ISBN:        "9780553103540",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780553103540-L.jpg",
	},
	{
		Title:       "The Name of the Wind",
		Author:      "Patrick Rothfuss",
		Description: "A fantasy novel about Kvothe, a legendary figure telling his own story.",
		ISBN:        "9780756404079",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780756404079-L.jpg",
	},
	{
		Title:       "The Stand",
		Author:      "Stephen King",
		Description: "A post-apocalyptic horror novel about a pandemic and the survivors.",
		ISBN:        "9780307743688",
		Genre:       "Horror",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307743688-L.jpg",
	},
	{
		Title:       "Ender's Game",
		Author:      "Orson Scott Card",
		Description: "A military science fiction novel about a young genius trained to fight aliens.",
		ISBN:        "9780812550702",
		Genre:       "Science Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780812550702-L.jpg",
	},
	{
		Title:       "The Silmarillion",
		Author:      "J.R.R. Tolkien",
		Description: "A collection of mythopoeic stories about the history of Middle-earth.",
		ISBN:        "9780618391110",
		Genre:       "Fantasy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780618391110-L.jpg",
	},
	{
		Title:       "Educated",
		Author:      "Tara Westover",
		Description: "A memoir about a woman who grows up in a survivalist family and escapes to learn.",
		ISBN:        "9780399590504",
		Genre:       "Memoir",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780399590504-L.jpg",
	},
	{
		Title:       "Becoming",
		Author:      "Michelle Obama",
		Description: "A memoir by the former First Lady of the United States.",
		ISBN:        "9781524763138",
		Genre:       "Memoir",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781524763138-L.jpg",
	},
	{
		Title:       "The 7 Habits of Highly Effective People",
		Author:      "Stephen R. Covey",
		Description: "A self-help book about achieving personal and professional effectiveness.",
		ISBN:        "9781982137274",
		Genre:       "Self-Help",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781982137274-L.jpg",
	},
	{
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Description: "A practical guide to building good habits and breaking bad ones.",
		ISBN:        "9780735211292",
		Genre:       "Self-Help",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780735211292-L.jpg",
	},
	{
		Title:       "The Power of Now",
		Author:      "Eckhart Tolle",
		Description: "A guide to spiritual enlightenment focused on living in the present moment.",
		ISBN:        "9781577314806",
		Genre:       "Spirituality",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781577314806-L.jpg",
	},
	{
		Title:       "Thinking, Fast and Slow",
		Author:      "Daniel Kahneman",
		Description: "A book about the two systems that drive the way we think.",
		ISBN:        "9780374533557",
		Genre:       "Psychology",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780374533557-L.jpg",
	},
	{
		Title:       "The Subtle Art of Not Giving a F*ck",
		Author:      "Mark Manson",
		Description: "A counterintuitive approach to living a good life.",
		ISBN:        "9780062457714",
		Genre:       "Self-Help",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780062457714-L.jpg",
	},
	{
		Title:       "Man's Search for Meaning",
		Author:      "Viktor E. Frankl",
		Description: "A memoir about surviving the Holocaust and finding purpose in life.",
		ISBN:        "9780807014295",
		Genre:       "Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780807014295-L.jpg",
	},
	{
		Title:       "The Lean Startup",
		Author:      "Eric Ries",
		Description: "A methodology for developing businesses and products.",
		ISBN:        "9780307887894",
		Genre:       "Business",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307887894-L.jpg",
	},
	{
		Title:       "Zero to One",
		Author:      "Peter Thiel",
		Description: "Notes on startups and how to build the future.",
		ISBN:        "9780804139298",
		Genre:       "Business",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780804139298-L.jpg",
	},
	{
		Title:       "The Immortal Life of Henrietta Lacks",
		Author:      "Rebecca Skloot",
		Description: "The story of a woman whose cells revolutionized medicine.",
		ISBN:        "9781400052189",
		Genre:       "Non-Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781400052189-L.jpg",
	},
	{
		Title:       "Into the Wild",
		Author:      "Jon Krakauer",
		Description: "The story of Christopher McCandless's journey into the Alaskan wilderness.",
		ISBN:        "9780385486804",
		Genre:       "Biography",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780385486804-L.jpg",
	},
	{
		Title:       "The Glass Castle",
		Author:      "Jeannette Walls",
		Description: "A memoir about growing up in a dysfunctional family.",
		ISBN:        "9780743247542",
		Genre:       "Memoir",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780743247542-L.jpg",
	},
	{
		Title:       "Born a Crime",
		Author:      "Trevor Noah",
		Description: "A memoir about growing up in South Africa during and after apartheid.",
		ISBN:        "9780399588174",
		Genre:       "Memoir",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780399588174-L.jpg",
	},
	{
		Title:       "The Gene: An Intimate History",
		Author:      "Siddhartha Mukherjee",
		Description: "A history of genetics and its impact on humanity.",
		ISBN:        "9781476733500",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781476733500-L.jpg",
	},
	{
		Title:       "A Brief History of Time",
		Author:      "Stephen Hawking",
		Description: "A landmark volume in science writing about cosmology.",
		ISBN:        "9780553380163",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780553380163-L.jpg",
	},
	{
		Title:       "The Sixth Extinction",
		Author:      "Elizabeth Kolbert",
		Description: "An examination of the current mass extinction event.",
		ISBN:        "9781250062185",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781250062185-L.jpg",
	},
	{
		Title:       "Guns, Germs, and Steel",
		Author:      "Jared Diamond",
		Description: "A book about the fates of human societies and environmental factors.",
		ISBN:        "9780393317558",
		Genre:       "Anthropology",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780393317558-L.jpg",
	},
	{
		Title:       "The Emperor of All Maladies",
		Author:      "Siddhartha Mukherjee",
		Description: "A biography of cancer and the fight against it.",
		ISBN:        "9781439170915",
		Genre:       "Medical History",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781439170915-L.jpg",
	},
	{
		Title:       "Quiet: The Power of Introverts",
		Author:      "Susan Cain",
		Description: "A book about the power of introverts in a world that can't stop talking.",
		ISBN:        "9780307352156",
		Genre:       "Psychology",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780307352156-L.jpg",
	},
	{
		Title:       "Outliers",
		Author:      "Malcolm Gladwell",
		Description: "A book about what makes high-achievers different.",
		ISBN:        "9780316017930",
		Genre:       "Psychology",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780316017930-L.jpg",
	},
	{
		Title:       "The Tipping Point",
		Author:      "Malcolm Gladwell",
		Description: "How little things can make a big difference.",
		ISBN:        "9780316346627",
		Genre:       "Sociology",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780316346627-L.jpg",
	},
	{
		Title:       "Freakonomics",
		Author:      "Steven D. Levitt",
		Description: "A rogue economist explores the hidden side of everything.",
		ISBN:        "9780060731328",
		Genre:       "Economics",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780060731328-L.jpg",
	},
	{
		Title:       "The Art of War",
		Author:      "Sun Tzu",
		Description: "An ancient Chinese military treatise on strategy and tactics.",
		ISBN:        "9781599869773",
		Genre:       "Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781599869773-L.jpg",
	},
	{
		Title:       "Meditations",
		Author:      "Marcus Aurelius",
		Description: "Personal writings by the Roman Emperor on Stoic philosophy.",
		ISBN:        "9780812968255",
		Genre:       "Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780812968255-L.jpg",
	},
	{
		Title:       "The Republic",
		Author:      "Plato",
		Description: "A Socratic dialogue concerning justice and the order of the city-state.",
		ISBN:        "9780140449143",
		Genre:       "Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780140449143-L.jpg",
	},
	{
		Title:       "The Prince",
		Author:      "Niccolò Machiavelli",
		Description: "A political treatise on leadership and power.",
		ISBN:        "9780140449150",
		Genre:       "Political Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780140449150-L.jpg",
	},
	{
		Title:       "The Communist Manifesto",
		Author:      "Karl Marx",
		Description: "A political pamphlet advocating for class struggle.",
		ISBN:        "9780140447576",
		Genre:       "Political Philosophy",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780140447576-L.jpg",
	},
	{
		Title:       "On the Origin of Species",
		Author:      "Charles Darwin",
		Description: "The foundational work of evolutionary biology.",
		ISBN:        "9780140439120",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780140439120-L.jpg",
	},
	{
		Title:       "The Selfish Gene",
		Author:      "Richard Dawkins",
		Description: "A gene-centered view of evolution.",
		ISBN:        "9780199291151",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780199291151-L.jpg",
	},
	{
		Title:       "Cosmos",
		Author:      "Carl Sagan",
		Description: "A journey through space and time exploring the universe.",
		ISBN:        "9780345539434",
		Genre:       "Science",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780345539434-L.jpg",
	},
	{
		Title:       "The Diary of a Young Girl",
		Author:      "Anne Frank",
		Description: "The diary of a Jewish girl hiding during the Holocaust.",
		ISBN:        "9780553296983",
		Genre:       "Biography",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780553296983-L.jpg",
	},
	{
		Title:       "Night",
		Author:      "Elie Wiesel",
		Description: "A memoir of experiences in Nazi concentration camps.",
		ISBN:        "9780374500016",
		Genre:       "Memoir",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780374500016-L.jpg",
	},
	{
		Title:       "The Color Purple",
		Author:      "Alice Walker",
		Description: "An epistolary novel about an African-American woman in the South.",
		ISBN:        "9780156028356",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780156028356-L.jpg",
	},
	{
		Title:       "Beloved",
		Author:      "Toni Morrison",
		Description: "A novel about the legacy of slavery.",
		ISBN:        "9781400033416",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781400033416-L.jpg",
	},
	{
		Title:       "The Grapes of Wrath",
		Author:      "John Steinbeck",
		Description: "A novel about a family during the Great Depression.",
		ISBN:        "9780143039433",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780143039433-L.jpg",
	},
	{
		Title:       "Of Mice and Men",
		Author:      "John Steinbeck",
		Description: "A novella about two displaced migrant workers during the Great Depression.",
		ISBN:        "9780142000670",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780142000670-L.jpg",
	},
	{
		Title:       "The Sun Also Rises",
		Author:      "Ernest Hemingway",
		Description: "A novel about American and British expatriates in Europe.",
		ISBN:        "9780743297332",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780743297332-L.jpg",
	},
	{
		Title:       "For Whom the Bell Tolls",
		Author:      "Ernest Hemingway",
		Description: "A novel about an American fighting in the Spanish Civil War.",
		ISBN:        "9780684803357",
		Genre:       "Historical Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780684803357-L.jpg",
	},
	{
		Title:       "A Farewell to Arms",
		Author:      "Ernest Hemingway",
		Description: "A novel about an American ambulance driver during World War I.",
		ISBN:        "9780684801469",
		Genre:       "War Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780684801469-L.jpg",
	},
	{
		Title:       "The Old Man and the Sea",
		Author:      "Ernest Hemingway",
		Description: "A short novel about an aging fisherman's epic battle with a giant marlin.",
		ISBN:        "9780684801223",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780684801223-L.jpg",
	},
	{
		Title:       "The Sound and the Fury",
		Author:      "William Faulkner",
		Description: "A novel about the decline of a Southern aristocratic family.",
		ISBN:        "9780679732242",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780679732242-L.jpg",
	},
	{
		Title:       "As I Lay Dying",
		Author:      "William Faulkner",
		Description: "A novel about a family's journey to bury their matriarch.",
		ISBN:        "9780679732259",
		Genre:       "Classic Fiction",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780679732259-L.jpg",
	},
	{
		Title:       "Twin Peaks: The Final Dossier",
		Author:      "Mark Frost",
		Description: "A novel expanding the Twin Peaks universe with FBI files and character backgrounds.",
		ISBN:        "9781250163301",
		Genre:       "Mystery",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781250163301-L.jpg",
	},
	{
		Title:       "The Secret History of Twin Peaks",
		Author:      "Mark Frost",
		Description: "An epistolary novel revealing the secret history of Twin Peaks.",
		ISBN:        "9781250075567",
		Genre:       "Mystery",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9781250075567-L.jpg",
	},
	{
		Title:       "The Autobiography of F.B.I. Special Agent Dale Cooper",
		Author:      "Scott Frost",
		Description: "The life story of Twin Peaks' FBI agent Dale Cooper.",
		ISBN:        "9780671736880",
		Genre:       "Mystery",
		CoverURL:    "https://covers.openlibrary.org/b/isbn/9780671736880-L.jpg",
	},
}
