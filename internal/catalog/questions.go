package catalog

// questionBank lists the 143 CASM-83 R2014 items in presentation order.
var questionBank = []Question{
	{Number: 1, Block: 1, OptionA: "Le gusta resolver problemas de matemáticas", OptionB: "Prefiere diseñar el modelo de casas, edificios, parques, etc."},
	{Number: 2, Block: 1, OptionA: "Le agrada observar la conducta de las personas y opinar sobre su personalidad", OptionB: "Prefiere expresar un fenómeno concreto en una ecuación matemática"},
	{Number: 3, Block: 1, OptionA: "Le gusta caminar por los cerros buscando piedras raras", OptionB: "Prefiere diseñar viviendas de una Urbanización"},
	{Number: 4, Block: 1, OptionA: "Le gusta escribir artículos deportivos para un diario", OptionB: "Prefiere determinar la resistencia de los materiales para una construcción"},
	{Number: 5, Block: 1, OptionA: "Le gusta hacer tallado en madera", OptionB: "Prefiere calcular la cantidad de materiales para una construcción"},
	{Number: 6, Block: 1, OptionA: "Le gusta ordenar y archivar documentos", OptionB: "Prefiere proyectar el sistema eléctrico para una construcción"},
	{Number: 7, Block: 2, OptionA: "Le agrada dedicar su tiempo en el estudio de teorías económicas", OptionB: "Prefiere dedicar su tiempo en la lectura de revistas sobre mecánica"},
	{Number: 8, Block: 2, OptionA: "Le gusta mucho la vida militar", OptionB: "Prefiere diseñar: máquinas, motores, etc, de alto rendimiento"},
	{Number: 9, Block: 2, OptionA: "Le gusta estudiar acerca de cómo formar una cooperativa", OptionB: "Prefiere estudiar el lenguaje de computación IBM"},
	{Number: 10, Block: 2, OptionA: "Le agrada estudiar la gramática", OptionB: "Prefiere estudiar las matemáticas"},
	{Number: 11, Block: 2, OptionA: "Le interesa mucho ser abogado", OptionB: "Preferiría dedicarse a escribir un tratado de física-matemática"},
	{Number: 12, Block: 2, OptionA: "Le cuenta a su madre y a su padre todas sus cosas", OptionB: "Prefiere ocultar algunas cosas para Ud. solo (a)"},
	{Number: 13, Block: 2, OptionA: "Le agrada estudiar la estructura atómica de los cuerpos", OptionB: "Prefiere asumir la defensa legal de alguna persona acusada por algún delito"},
	{Number: 14, Block: 2, OptionA: "Le interesa mucho estudiar como funciona un computador", OptionB: "Prefiere el estudio de las leyes y principios de la conducta psicológica"},
	{Number: 15, Block: 2, OptionA: "Le agrada analizar la forma como se organiza un pueblo", OptionB: "Prefiere el estudio de las leyes y principios de la conducta psicológica"},
	{Number: 16, Block: 2, OptionA: "Le gusta analizar las rocas, piedras, tierra para averiguar su composición mineral", OptionB: "Prefiere el estudio de las organizaciones sean: campesinas, educativas, laborales, políticas, económicas o religiosas"},
	{Number: 17, Block: 2, OptionA: "Le gusta escribir artículos culturales para un diario", OptionB: "Prefiere pensar largamente acerca de la forma como el hombre podría mejorar su existencia"},
	{Number: 18, Block: 2, OptionA: "Le agrada diseñar: muebles, puertas, ventanas, etc", OptionB: "Prefiere dedicar su tiempo a conocer las costumbres y tradiciones de los pueblos"},
	{Number: 19, Block: 2, OptionA: "Le gusta mucho conocer el trámite documentario de un ministerio público", OptionB: "Prefiere el estudio de las religiones"},
	{Number: 20, Block: 2, OptionA: "Le interesa mucho conocer los mecanismos de la economía nacional", OptionB: "Prefiere ser guía espiritual de las personas"},
	{Number: 21, Block: 2, OptionA: "Le interesa mucho tener bajo su mando a un grupo de soldados", OptionB: "Prefiere enseñar lo que sabe a un grupo de compañeros"},
	{Number: 22, Block: 2, OptionA: "Le gusta ser parte de la administración de una cooperativa", OptionB: "Prefiere el estudio de las formas más efectivas para la enseñanza de jóvenes y niños"},
	{Number: 23, Block: 3, OptionA: "Le interesa mucho estudiar la raíz gramatical de las palabras de su idioma", OptionB: "Prefiere dedicar su tiempo en la búsqueda de huacos y ruinas"},
	{Number: 24, Block: 3, OptionA: "Le agrada mucho estudiar el código del derecho civil", OptionB: "Prefiere el estudio de las culturas peruanas y de otras naciones"},
	{Number: 25, Block: 3, OptionA: "Le agrada que sus hermanos o familiares lo vigilen constantemente", OptionB: "Prefiere que confíen en su buen criterio"},
	{Number: 26, Block: 3, OptionA: "Le gustaría escribir un tratado acerca de la historia del Perú", OptionB: "Prefiere asumir la defensa legal de un acusado por narcotráfico"},
	{Number: 27, Block: 3, OptionA: "Le gusta proyectar las redes de agua y desagüe de una ciudad", OptionB: "Prefiere estudiar acerca de las enfermedades de la dentadura"},
	{Number: 28, Block: 3, OptionA: "Le gusta visitar museos arqueológicos y conocer la vivienda y otros utensilios de nuestros antepasados", OptionB: "Prefiere hacer moldes para una dentadura postiza"},
	{Number: 29, Block: 3, OptionA: "Le gusta recolectar plantas y clasificarlas por especies", OptionB: "Prefiere leer sobre el origen y funcionamiento de las plantas y animales"},
	{Number: 30, Block: 3, OptionA: "Le gusta saber como se organiza una editorial periodística", OptionB: "Prefiere conocer las características de los órganos humanos y como funcionan"},
	{Number: 31, Block: 3, OptionA: "Le agrada construir; muebles, puertas, ventanas, etc.", OptionB: "Prefiere estudiar acerca de las enfermedades de las personas"},
	{Number: 32, Block: 3, OptionA: "Le agradaría trabajar en la recepción y trámite documentario de una oficina pública", OptionB: "Prefiere experimentar con las plantas para obtener nuevas especies"},
	{Number: 33, Block: 3, OptionA: "Le gusta proyectar los mecanismos de inversión económica de una empresa", OptionB: "Prefiere analizar las tierras para obtener mayor producción agropecuaria"},
	{Number: 34, Block: 3, OptionA: "Le agrada recibir y ejecutar órdenes de un superior", OptionB: "Prefiere el estudio de los órganos de los animales y su funcionamiento"},
	{Number: 35, Block: 3, OptionA: "Le gusta saber mucho sobre los principios económicos de una cooperativa", OptionB: "Prefiere conocer las enfermedades que aquejan, sea: el ganado, aves, perros, etc."},
	{Number: 36, Block: 3, OptionA: "Le agrada estudiar los fenómenos (sonidos verbales) de su idioma, o de otros", OptionB: "Prefiere dedicar mucho de su tiempo en el estudio de la química"},
	{Number: 37, Block: 3, OptionA: "Le agrada defender pleitos judiciales de recuperación de tierras", OptionB: "Prefiere hacer mezclas de sustancias químicas para obtener derivados con fines productivos"},
	{Number: 38, Block: 4, OptionA: "Sus amigos saben todo de usted, para ellos no tiene secretos", OptionB: "Prefiere reservar algo para usted solo (a) algunos secretos"},
	{Number: 39, Block: 4, OptionA: "Le gusta investigar acerca de los recursos naturales de nuestro país (su fauna, su flora y suelo)", OptionB: "Prefiere estudiar derecho internacional"},
	{Number: 40, Block: 4, OptionA: "Le gusta desarrollar programas de computación para proveer de información rápida y eficiente: a una empresa, institución, etc.", OptionB: "Prefiere obtener fotografías que hagan noticia"},
	{Number: 41, Block: 4, OptionA: "Le gusta mucho conocer el problema de las personas y tramitar su solución", OptionB: "Prefiere dedicar su tiempo a la búsqueda de personajes que hacen noticia"},
	{Number: 42, Block: 4, OptionA: "Le gusta estudiar las características territoriales de los continentes", OptionB: "Prefiere entrevistar a políticos con el propósito de establecer su posición frente a un problema"},
	{Number: 43, Block: 4, OptionA: "Le gusta conocer el funcionamiento de las máquinas impresoras de periódicos", OptionB: "Prefiere trabajar en el montaje fotográfico de un diario o revista"},
	{Number: 44, Block: 4, OptionA: "Le gusta proyectar el tipo de muebles, cortinas y adornos sea para una oficina o para un hogar", OptionB: "Prefiere trabajar como redactor en un diario o revista"},
	{Number: 45, Block: 4, OptionA: "Le gusta redactar cartas comerciales, al igual que oficios y solicitudes", OptionB: "Prefiere averiguar lo que opina el público respecto a un producto"},
	{Number: 46, Block: 4, OptionA: "Le gusta estudiar las leyes de la oferta y la demanda", OptionB: "Prefiere redactar el tema para un anuncio publicitario"},
	{Number: 47, Block: 4, OptionA: "Le gusta organizar el servicio de inteligencia de un cuartel", OptionB: "Prefiere trabajar en una agencia de publicidad"},
	{Number: 48, Block: 4, OptionA: "Le gusta trabajar buscando casas de alquiler para ofrecerlas al público", OptionB: "Prefiere estudiar las características psicológicas para lograr un buen impacto publicitario"},
	{Number: 49, Block: 4, OptionA: "Le interesa investigar acerca de cómo se originaron los idiomas", OptionB: "Prefiere preparar y ejecutar encuestas para conocer la opinión de las personas"},
	{Number: 50, Block: 4, OptionA: "Le agrada hacer los trámites legales de un juicio de divorcio", OptionB: "Prefiere trabajar estableciendo contactos entre una empresa y otra"},
	{Number: 51, Block: 5, OptionA: "Cuando está dando un examen y tiene la oportunidad de verificar una respuesta, nunca lo hace", OptionB: "Prefiere aprovechar la seguridad que la ocasión le confiere"},
	{Number: 52, Block: 5, OptionA: "Le interesa investigar sobre los problemas del lenguaje en la comunicación masiva", OptionB: "Prefiere redactar documentos legales para contratos internacionales"},
	{Number: 53, Block: 5, OptionA: "Le gusta trabajar haciendo instalaciones eléctricas", OptionB: "Prefiere dedicar su tiempo en la lectura de las novedades en la decoración de ambientes"},
	{Number: 54, Block: 5, OptionA: "Le agrada mucho visitar el hogar de los trabajadores con el fin de verificar su verdadera situación social y económica", OptionB: "Prefiere trabajar en el decorado de tiendas y vitrinas"},
	{Number: 55, Block: 5, OptionA: "Le gusta estudiar los recursos geográficos", OptionB: "Prefiere observar el comportamiento de las personas e imitarlas"},
	{Number: 56, Block: 5, OptionA: "Le gustaría dedicar su tiempo a la organización de eventos deportivos entre dos o mas centros laborales", OptionB: "Preferiría dedicarse al estudio de la vida y obra de los grandes actores del cine y del teatro"},
	{Number: 57, Block: 5, OptionA: "Le gustaría estudiar escultura en la escuela de bellas artes", OptionB: "Preferiría ser parte de un elenco de teatro"},
	{Number: 58, Block: 5, OptionA: "Le gusta trabajar de mecanógrafo (a)", OptionB: "Le gusta más dar forma a objetos moldeables; sea: plastilina, migas, arcilla, piedras, etc."},
	{Number: 59, Block: 5, OptionA: "Le agrada mucho estudiar los fundamentos por los que una moneda se devalúa", OptionB: "Prefiere la lectura acerca de la vida y obra de grandes escultores como Miguel Angel, Leonardo de Vinci, etc."},
	{Number: 60, Block: 5, OptionA: "Le agrada mucho la vida del marinero", OptionB: "Prefiere combinar colores para expresar con naturalidad y belleza un paisaje"},
	{Number: 61, Block: 5, OptionA: "Le gustaría trabajar tramitando la compra-venta de inmuebles", OptionB: "Prefiere utilizar las líneas y colores para expresar un sentimiento"},
	{Number: 62, Block: 5, OptionA: "Le gusta estudiar las lenguas y dialectos aborígenes", OptionB: "Prefiere combinar sonidos para obtener una nueva melodía"},
	{Number: 63, Block: 5, OptionA: "Le agrada tramitar judicialmente el reconocimiento de sus hijos", OptionB: "Le agrada más aprender a tocar algún instrumento musical"},
	{Number: 64, Block: 6, OptionA: "Si pasa por un cine y descubre que no hay vigilancia, no se aprovecha de la situación", OptionB: "Prefiere aprovechar la ocasión para entrar sin pagar su boleto"},
	{Number: 65, Block: 6, OptionA: "Le interesa más diseñar y/o confeccionar artículos de cuero", OptionB: "Prefiere asumir la defensa legal en la demarcación de fronteras territoriales"},
	{Number: 66, Block: 6, OptionA: "Prefiere estudiar acerca de cómo la energía se transforma en imágenes de radio, tv, etc.", OptionB: "Le gusta tomar apuntes textuales o didácticos de otras personas"},
	{Number: 67, Block: 6, OptionA: "Le gusta leer sobre la vida y obra de los santos religiosos", OptionB: "Prefiere hacer catálogos o listados de los libros de una biblioteca"},
	{Number: 68, Block: 6, OptionA: "Le gusta dedicar mucho de su tiempo en la lectura de la astronomía", OptionB: "Prefiere trabajar clasificando los libros por autores"},
	{Number: 69, Block: 6, OptionA: "Le gusta trabajar defendiendo el prestigio de su centro laboral", OptionB: "Prefiere trabajar recibiendo y entregando documentos valorados como: cheques, giros, libretas de ahorro, etc."},
	{Number: 70, Block: 6, OptionA: "Le interesa mucho leer sobre la vida y obra de músicos famosos", OptionB: "Prefiere el tipo de trabajo de un empleado bancario"},
	{Number: 71, Block: 6, OptionA: "Le interesa mucho conseguir un trabajo en un banco comercial", OptionB: "Prefiere dedicarse a clasificar libros por especialidades"},
	{Number: 72, Block: 6, OptionA: "Le gusta dedicar su tiempo en el conocimiento del por qué ocurre la inflación económica", OptionB: "Prefiere dedicarse al estudio de cómo se organiza una biblioteca"},
	{Number: 73, Block: 6, OptionA: "Le interesa mucho el conocimiento de la organización de un buque de guerra", OptionB: "Prefiere dedicarse a la recepción y comunicación de mensajes sean verbales o por escrito"},
	{Number: 74, Block: 6, OptionA: "Le gusta trabajar tramitando la compra-venta de vehículos motorizados", OptionB: "Prefiere transcribir los documentos de la administración pública"},
	{Number: 75, Block: 6, OptionA: "Le gusta dedicar gran parte de su tiempo al estudio de las normas y reglas para el uso adecuado del lenguaje", OptionB: "Prefiere trabajar como secretario adjunto al jefe"},
	{Number: 76, Block: 6, OptionA: "Le gusta dedicar su tiempo planteando la defensa de un juicio de alquiler", OptionB: "Prefiere asesorar y aconsejar en torno a tramites documentarios"},
	{Number: 77, Block: 7, OptionA: "Si en la calle se encuentra dinero, sin documento alguno acude a la radio, TV para buscar al infortunado", OptionB: "Preferiría quedarse con el dinero, pues no se conoce al dueño"},
	{Number: 78, Block: 7, OptionA: "Le interesa trabajar en la implementación de bibliotecas distritales", OptionB: "Prefiere asumir la responsabilidad legal para que un fugitivo, con residencia en otro país, sea devuelto a su país"},
	{Number: 79, Block: 7, OptionA: "Le gusta estudiar acerca de cómo la energía se transforma en movimiento", OptionB: "Preferiría hacer una tesis sobre manejo económico para el país"},
	{Number: 80, Block: 7, OptionA: "Le agrada leer sobre la vida y obra de grandes personajes de educación, sean: profesores, filósofos, psicólogos", OptionB: "Prefiere estudiar acerca de las bases económicas de un país"},
	{Number: 81, Block: 7, OptionA: "Le gusta estudiar los astros; sus características, origen y evolución", OptionB: "Prefiere establecer comparaciones entre los sistemas y modelos económicos del mundo"},
	{Number: 82, Block: 7, OptionA: "Le gustaría trabajar exclusivamente promocionando la imagen de su centro laboral", OptionB: "Prefiere estudiar las grandes corrientes ideológicas del mundo"},
	{Number: 83, Block: 7, OptionA: "Le gusta y practica el baile como expresión artística", OptionB: "Prefiere estudiar las bases de la organización política del Tahuantinsuyo"},
	{Number: 84, Block: 7, OptionA: "Le gusta mucho saber sobre el manejo de los archivos públicos", OptionB: "Prefiere establecer diferencias entre los distintos modelos políticos"},
	{Number: 85, Block: 7, OptionA: "Le gusta investigar sobre las características de los regímenes totalitarios, democráticos, republicanos, etc.", OptionB: "Prefiere ser el representante de su país en el extranjero"},
	{Number: 86, Block: 7, OptionA: "Le gusta ser capitán de un buque de guerra", OptionB: "Le interesa más formar y conducir grupos con fines políticos"},
	{Number: 87, Block: 7, OptionA: "Le agrada ser visitador médico", OptionB: "Prefiere dedicar su tiempo en la lectura de la vida y obra de los grandes políticos"},
	{Number: 88, Block: 7, OptionA: "Siente placer buscando en el diccionario el significado de palabras nuevas", OptionB: "Prefiere dedicar todo su tiempo en aras de la paz entre las naciones"},
	{Number: 89, Block: 7, OptionA: "Le interesa mucho estudiar el código penal", OptionB: "Prefiere estudiar los sistemas políticos de otros países"},
	{Number: 90, Block: 8, OptionA: "Le agradan que le dejen muchas tareas para su casa", OptionB: "Prefiere que estas sean lo necesario para aprender"},
	{Number: 91, Block: 8, OptionA: "Le agrada ser miembro activo de una agrupación política", OptionB: "Prefiere escuchar acusaciones y defensas para sancionar de acuerdo a lo que la ley señala"},
	{Number: 92, Block: 8, OptionA: "Le gusta hacer los cálculos para el diseño de telas a gran escala", OptionB: "Le interesa más la mecánica de los barcos y submarinos"},
	{Number: 93, Block: 8, OptionA: "Le agrada observar y evaluar como se desarrolla la inteligencia y personalidad", OptionB: "Prefiere ser aviador"},
	{Number: 94, Block: 8, OptionA: "Le gustaría dedicar su tiempo en el descubrimiento de nuevos medicamentos", OptionB: "Prefiere dedicarse a la lectura acerca de la vida y obra de reconocidos militares, que han aportado en la organización de su institución"},
	{Number: 95, Block: 8, OptionA: "Le gusta la aventura cuando está dirigida a descubrir algo que haga noticia", OptionB: "Prefiere conocer el mecanismo de los aviones de guerra"},
	{Number: 96, Block: 8, OptionA: "Le gusta ser parte de una agrupación de baile y danzas", OptionB: "Preferiría pertenecer a la Fuerza Aérea"},
	{Number: 97, Block: 8, OptionA: "Le gusta el trabajo de llevar mensajes de una dependencia a otra", OptionB: "Prefiere ser miembro de la Policía"},
	{Number: 98, Block: 8, OptionA: "Le gustaría trabajar estableciendo vínculos culturales con otros países", OptionB: "Prefiere el trabajo en la detección y comprobación del delito"},
	{Number: 99, Block: 8, OptionA: "Le gusta trabajar custodiando el orden público", OptionB: "Prefiere ser vigilante receloso de nuestras fronteras"},
	{Number: 100, Block: 8, OptionA: "Le gusta persuadir a los boticarios en la compra de nuevos medicamentos", OptionB: "Prefiere trabajar vigilando a los presos en las prisiones"},
	{Number: 101, Block: 8, OptionA: "Le apasiona leer de escritores serios y famosos", OptionB: "Prefiere organizar el servicio de inteligencia en la destrucción del narcotráfico"},
	{Number: 102, Block: 8, OptionA: "Le gusta asumir la defensa legal de una persona acusada de robo", OptionB: "Prefiere conocer el mecanismo de las armas de fuego"},
	{Number: 103, Block: 9, OptionA: "Se aleja Ud. cuando sus amistades cuentan 'chistes colorados'", OptionB: "Prefiere quedarse gozando de la ocasión"},
	{Number: 104, Block: 9, OptionA: "Le interesa mucho saber cómo se organiza un ejercito", OptionB: "Prefiere participar como jurado de un juicio"},
	{Number: 105, Block: 9, OptionA: "Le gusta proyectar la extracción de metales de una mina", OptionB: "Prefiere estudiar el nombre de los medicamentos y su ventaja comercial"},
	{Number: 106, Block: 9, OptionA: "Le gusta descifrar los diseños gráficos y escritos de culturas muy antiguas", OptionB: "Prefiere persuadir a la gente para que compre un producto"},
	{Number: 107, Block: 9, OptionA: "Le agrada el estudio de los mecanismos de la visión y de sus enfermedades", OptionB: "Prefiere vender cosas"},
	{Number: 108, Block: 9, OptionA: "Le gustaría ganarse la vida escribiendo para un diario o revista", OptionB: "Prefiere estudiar el mercado y descubrir el producto de mayor demanda"},
	{Number: 109, Block: 9, OptionA: "Le gusta actuar, representando a distintos personajes", OptionB: "Le agrada más tener su propio negocio"},
	{Number: 110, Block: 9, OptionA: "Le gusta sentirse importante sabiendo que de usted depende la rapidez o la lentitud de una solicitud", OptionB: "Prefiere trabajar en un bazar"},
	{Number: 111, Block: 9, OptionA: "Le gusta planificar sea para una empresa local o a nivel nacional", OptionB: "Prefiere el negocio de una bodega o tienda de abarrotes"},
	{Number: 112, Block: 9, OptionA: "Le interesa mucho utilizar sus conocimientos en la construcción de armamentos", OptionB: "Prefiere organizar empresas de finanzas y comercio"},
	{Number: 113, Block: 9, OptionA: "Le agrada llevar la contabilidad de una empresa o negocio", OptionB: "Prefiere hacer las planillas de pago para los trabajadores de una empresa o institución"},
	{Number: 114, Block: 9, OptionA: "Le agrada escribir cartas y luego hacer tantas correcciones como sean necesarias", OptionB: "Prefiere ser incorporado como miembros de la corporación nacional de comercio"},
	{Number: 115, Block: 9, OptionA: "Le gusta asumir la defensa legal de una persona acusada de asesinato", OptionB: "Prefiere ser incorporado como miembro de la corporación nacional de comercio"},
	{Number: 116, Block: 10, OptionA: "Le agrada vestir todos los días muy formalmente (con terno y corbata por ejemplo)", OptionB: "Prefiere reservar esa vestimenta para ciertas ocasiones"},
	{Number: 117, Block: 10, OptionA: "Le gusta evaluar la producción laboral de un grupo de trabajadores", OptionB: "Prefiere plantear, previa investigación, la acusación de un sujeto que ha actuado en contra de la ley"},
	{Number: 118, Block: 10, OptionA: "Le gusta estudiar acerca de los reactores atómicos", OptionB: "Prefiere el estudio de las distintas formas literarias"},
	{Number: 119, Block: 10, OptionA: "Le agrada estudiar en torno de la problemática social del Perú", OptionB: "Prefiere escribir cuidando mucho ser comprendido al tiempo que sus escritos resulten agradables al lector"},
	{Number: 120, Block: 10, OptionA: "Le gustaría escribir un tratado sobre anatomía humana", OptionB: "Prefiere recitar sus propios poemas"},
	{Number: 121, Block: 10, OptionA: "Le gustaría incorporarse al colegio de periodistas del Perú", OptionB: "Prefiere aprender otro idioma"},
	{Number: 122, Block: 10, OptionA: "Le gusta diseñar y/o confeccionar: adornos, utensilios, etc., en cerámica, vidrio; etc.", OptionB: "Prefiere traducir textos escritos en otros idiomas"},
	{Number: 123, Block: 10, OptionA: "Le gustaría desarrollar técnicas de mayor eficiencia en el trámite documentario de un ministerio público", OptionB: "Prefiere escribir en otro idioma"},
	{Number: 124, Block: 10, OptionA: "Le agradaría mucho ser secretario general de una central sindical", OptionB: "Prefiere dedicar su tiempo al estudio de lenguas extintas (muertas)"},
	{Number: 125, Block: 10, OptionA: "Le gustaría dedicarse al estudio de normas de alta peligrosidad", OptionB: "Prefiere trabajar como traductor"},
	{Number: 126, Block: 10, OptionA: "Le gusta llevar la estadística de ingresos y egresos mensuales de una empresa o tal vez de una nación", OptionB: "Prefiere los cursos de idiomas: Inglés, Francés, Italiano, etc."},
	{Number: 127, Block: 10, OptionA: "Le gustaría ser incorporado como miembro de la Real Academia de la Lengua Española", OptionB: "Prefiere ser incorporado al Instituto Nacional del Idioma"},
	{Number: 128, Block: 10, OptionA: "Le interesaría ser el asesor legal de un ministro de estado", OptionB: "Prefiere aquellas situaciones que le inspiran a escribir"},
	{Number: 129, Block: 11, OptionA: "Nunca ha bebido licor, aún en ciertas ocasiones lo ha rechazado", OptionB: "Por lo contrario se ha adecuado a las circunstancias"},
	{Number: 130, Block: 11, OptionA: "Le agrada dedicar mucho de su tiempo en la escritura de poemas, cuentos, etc.", OptionB: "Prefiere sentirse importante al saber que de su defensa legal depende la libertad de una persona"},
	{Number: 131, Block: 11, OptionA: "Le agrada estudiar la estructura atómica de los cuerpos", OptionB: "Prefiere asumir la defensa legal de una persona acusada por algún delito"},
	{Number: 132, Block: 11, OptionA: "Le gustaría escribir un tratado acerca de la historia del Perú", OptionB: "Prefiere asumir la defensa legal de un acusado por narcotráfico"},
	{Number: 133, Block: 11, OptionA: "Le gusta investigar de los recursos naturales de nuestro país (su fauna, su flora, su suelo)", OptionB: "Prefiere estudiar el derecho internacional"},
	{Number: 134, Block: 11, OptionA: "Le interesa investigar sobre los problemas del lenguaje en la comunicación masiva", OptionB: "Prefiere redactar documentos legales para contratos internacionales"},
	{Number: 135, Block: 11, OptionA: "Le interesa diseñar y/o confeccionar artículos de cuero", OptionB: "Prefiere asumir la defensa legal en la demarcación de fronteras territoriales"},
	{Number: 136, Block: 11, OptionA: "Le interesa trabajar en la implementación de bibliotecas distritales", OptionB: "Prefiere asumir la responsabilidad legal para que un fugitivo con residencia en otro país sea devuelto a su país"},
	{Number: 137, Block: 11, OptionA: "Le agrada ser miembro activo de una agrupación política", OptionB: "Prefiere escuchar acusaciones y defensas para sancionar de acuerdo a lo que la ley señala"},
	{Number: 138, Block: 11, OptionA: "Le interesa mucho saber como se organiza un ejército", OptionB: "Prefiere participar como jurado en un juicio"},
	{Number: 139, Block: 11, OptionA: "Le gusta evaluar la producción laboral de un grupo de trabajadores", OptionB: "Prefiere plantear previa investigación la acusación de un sujeto que ha ido en contra de la ley"},
	{Number: 140, Block: 11, OptionA: "Le gusta dedicar mucho de su tiempo en la escritura de poemas, cuentos", OptionB: "Prefiere sentirse importante al saber que de su defensa legal depende la libertad de una persona"},
	{Number: 141, Block: 11, OptionA: "Le gustaría dedicarse a la legalización de documentos (contratos, cartas, partidas, títulos, etc.)", OptionB: "Prefiere ser incorporado en una comisión para redactar un proyecto de ley"},
	{Number: 142, Block: 11, OptionA: "Le agrada viajar en un microbús repleto de gente aún cuando no tiene ningún apuro", OptionB: "Prefiere esperar otro vehículo"},
	{Number: 143, Block: 11, OptionA: "Le gusta resolver problemas matemáticos", OptionB: "Prefiere diseñar el modelo de casas, edificios, parques, etc."},
}
